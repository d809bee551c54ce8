package entity

// DirectoryFilter restringe a listagem pública de instaladores. UF e
// cidade são obrigatórios; especialidades e busca são opcionais.
type DirectoryFilter struct {
	State       string
	City        string
	Specialties []string
	Search      string
}

// StateCount é a contagem de instaladores aprovados por UF.
type StateCount struct {
	UF    string `db:"state" json:"uf"`
	Name  string `json:"name"`
	Total int    `db:"total" json:"total"`
}

// CityCount é a contagem de instaladores aprovados por cidade.
type CityCount struct {
	City  string `db:"city" json:"cidade"`
	Total int    `db:"total" json:"total"`
}
