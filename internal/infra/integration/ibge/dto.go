package ibge

type municipio struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
