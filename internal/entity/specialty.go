package entity

import "strings"

// Specialties é o catálogo fechado de especialidades que um instalador
// pode declarar.
var Specialties = []string{
	"Telemetria",
	"Vídeo Telemetria",
	"Rastreador com Bloqueio",
	"Rastreador sem Bloqueio",
}

func IsValidSpecialty(s string) bool {
	for _, v := range Specialties {
		if v == s {
			return true
		}
	}
	return false
}

// ParseSpecialties aceita a lista já separada ou uma string com
// vírgulas (formato do front antigo) e descarta o que não estiver no
// catálogo.
func ParseSpecialties(values []string, csv string) []string {
	raw := values
	if len(raw) == 0 && csv != "" {
		raw = []string{csv}
	}
	out := make([]string, 0, len(raw))
	for _, field := range raw {
		for _, v := range strings.Split(field, ",") {
			v = strings.TrimSpace(v)
			if IsValidSpecialty(v) && !containsString(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
