package entity

import "strings"

// State é uma UF brasileira. A lista é fechada: cadastro e busca só
// aceitam UFs daqui.
type State struct {
	UF   string `json:"uf"`
	Name string `json:"name"`
}

var States = []State{
	{"AC", "Acre"},
	{"AL", "Alagoas"},
	{"AP", "Amapá"},
	{"AM", "Amazonas"},
	{"BA", "Bahia"},
	{"CE", "Ceará"},
	{"DF", "Distrito Federal"},
	{"ES", "Espírito Santo"},
	{"GO", "Goiás"},
	{"MA", "Maranhão"},
	{"MT", "Mato Grosso"},
	{"MS", "Mato Grosso do Sul"},
	{"MG", "Minas Gerais"},
	{"PA", "Pará"},
	{"PB", "Paraíba"},
	{"PR", "Paraná"},
	{"PE", "Pernambuco"},
	{"PI", "Piauí"},
	{"RJ", "Rio de Janeiro"},
	{"RN", "Rio Grande do Norte"},
	{"RS", "Rio Grande do Sul"},
	{"RO", "Rondônia"},
	{"RR", "Roraima"},
	{"SC", "Santa Catarina"},
	{"SP", "São Paulo"},
	{"SE", "Sergipe"},
	{"TO", "Tocantins"},
}

func NormalizeUF(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}

func IsValidUF(uf string) bool {
	uf = NormalizeUF(uf)
	for _, s := range States {
		if s.UF == uf {
			return true
		}
	}
	return false
}

// OnlyDigits remove tudo que não for dígito (CPF, telefone etc).
func OnlyDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToWhatsAppNumber normaliza um telefone para o formato aceito pelo
// wa.me: só dígitos, com DDI 55 na frente quando faltar.
func ToWhatsAppNumber(raw string) string {
	digits := OnlyDigits(raw)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "55") {
		return digits
	}
	return "55" + digits
}

// WhatsAppURL monta o deep link de contato devolvido ao cliente quando
// uma proposta é aceita. Não é persistido.
func WhatsAppURL(raw string) string {
	number := ToWhatsAppNumber(raw)
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}
