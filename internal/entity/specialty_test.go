package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rastroinstala/instala-api/internal/entity"
)

func TestParseSpecialtiesFromList(t *testing.T) {
	got := entity.ParseSpecialties([]string{"Telemetria", "Rastreador com Bloqueio"}, "")
	assert.Equal(t, []string{"Telemetria", "Rastreador com Bloqueio"}, got)
}

func TestParseSpecialtiesFromCSV(t *testing.T) {
	// Formato do front antigo: uma string só, separada por vírgulas.
	got := entity.ParseSpecialties(nil, "Telemetria, Vídeo Telemetria")
	assert.Equal(t, []string{"Telemetria", "Vídeo Telemetria"}, got)
}

func TestParseSpecialtiesDropsUnknownAndDuplicates(t *testing.T) {
	got := entity.ParseSpecialties([]string{"Telemetria", "Telemetria", "Som Automotivo"}, "")
	assert.Equal(t, []string{"Telemetria"}, got)
}

func TestParseSpecialtiesSplitsCommaInsideElements(t *testing.T) {
	got := entity.ParseSpecialties([]string{"Telemetria,Rastreador sem Bloqueio"}, "")
	assert.Equal(t, []string{"Telemetria", "Rastreador sem Bloqueio"}, got)
}

func TestParseSpecialtiesEmpty(t *testing.T) {
	assert.Empty(t, entity.ParseSpecialties(nil, ""))
}
