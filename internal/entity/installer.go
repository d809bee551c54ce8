package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status do instalador. Nasce pending e é transicionado uma única vez
// pela revisão do admin.
const (
	InstallerPending  = "pending"
	InstallerApproved = "approved"
	InstallerRejected = "rejected"
)

// Modos de atendimento.
const (
	ServiceModeShop   = "loja"
	ServiceModeOnSite = "domicilio"
	ServiceModeBoth   = "ambos"
)

type Installer struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"nome"`
	Email     string `db:"email" json:"email"`
	CPF       string `db:"cpf" json:"cpf"`
	BirthDate string `db:"birth_date" json:"data_nascimento"`
	Address   string `db:"address" json:"endereco"`

	State string `db:"state" json:"estado"`
	City  string `db:"city" json:"cidade"`

	Phone    string `db:"phone" json:"telefone"`
	WhatsApp string `db:"whatsapp" json:"whatsapp"`

	// text[] no Postgres; pq.StringArray cuida do scan.
	Specialties pq.StringArray `db:"specialties" json:"specialties"`
	ServiceMode string         `db:"service_mode" json:"tipo_atendimento"`

	DocumentPath string `db:"document_path" json:"documento_path"`
	SelfiePath   string `db:"selfie_path" json:"selfie_path"`

	// Hash da senha para login depois da aprovação. Nunca sai no JSON.
	PasswordHash string `db:"password_hash" json:"-"`

	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
}

func NewInstaller(name, email, cpf, birthDate, address, state, city, phone, whatsapp, serviceMode, passwordHash string, specialties []string) (*Installer, error) {
	inst := &Installer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		CPF:          cpf,
		BirthDate:    birthDate,
		Address:      address,
		State:        NormalizeUF(state),
		City:         city,
		Phone:        phone,
		WhatsApp:     ToWhatsAppNumber(whatsapp),
		Specialties:  pq.StringArray(specialties),
		ServiceMode:  serviceMode,
		PasswordHash: passwordHash,
		Status:       InstallerPending,
		CreatedAt:    time.Now(),
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (i *Installer) Validate() error {
	if i.Name == "" {
		return errors.New("nome é obrigatório")
	}
	if i.Email == "" {
		return errors.New("email é obrigatório")
	}
	if len(OnlyDigits(i.CPF)) != 11 {
		return errors.New("cpf precisa ter 11 dígitos")
	}
	if !IsValidUF(i.State) {
		return errors.New("uf inválida")
	}
	if i.City == "" {
		return errors.New("cidade é obrigatória")
	}
	if len(i.Specialties) == 0 {
		return errors.New("selecione ao menos uma especialidade")
	}
	switch i.ServiceMode {
	case ServiceModeShop, ServiceModeOnSite, ServiceModeBoth:
	default:
		return errors.New("tipo de atendimento inválido")
	}
	return nil
}

func (i *Installer) Approved() bool {
	return i.Status == InstallerApproved
}
