package entity

// ActorKind identifica quem está autenticado. Os valores batem com o
// campo "tipo" do login e com o que o front espera de volta.
type ActorKind string

const (
	KindCustomer  ActorKind = "user"
	KindInstaller ActorKind = "installer"
	KindAdmin     ActorKind = "admin"
)

func (k ActorKind) Valid() bool {
	switch k {
	case KindCustomer, KindInstaller, KindAdmin:
		return true
	}
	return false
}
