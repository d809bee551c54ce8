package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rastroinstala/instala-api/internal/entity"
)

func TestStatesCatalog(t *testing.T) {
	assert.Len(t, entity.States, 27)
	assert.True(t, entity.IsValidUF("PR"))
	assert.True(t, entity.IsValidUF(" pr "))
	assert.False(t, entity.IsValidUF("XX"))
	assert.False(t, entity.IsValidUF(""))
}

func TestNormalizeUF(t *testing.T) {
	assert.Equal(t, "SP", entity.NormalizeUF(" sp "))
	assert.Equal(t, "DF", entity.NormalizeUF("df"))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678909", entity.OnlyDigits("123.456.789-09"))
	assert.Equal(t, "41988887777", entity.OnlyDigits("(41) 98888-7777"))
	assert.Equal(t, "", entity.OnlyDigits("sem números"))
}

func TestToWhatsAppNumber(t *testing.T) {
	// DDI 55 entra quando falta e não duplica quando já está lá.
	assert.Equal(t, "5541988887777", entity.ToWhatsAppNumber("(41) 98888-7777"))
	assert.Equal(t, "5541988887777", entity.ToWhatsAppNumber("+55 41 98888-7777"))
	assert.Equal(t, "", entity.ToWhatsAppNumber(""))
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/5541988887777", entity.WhatsAppURL("41 98888-7777"))
	assert.Equal(t, "", entity.WhatsAppURL("---"))
}
