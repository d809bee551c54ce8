package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationFailed(errs []ValidationError) *DomainError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validação falhou: " + strings.Join(msgs, ", "),
	}
}

func ValidateRegisterInstallerInput(input RegisterInstallerInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "é inválido"})
	}

	// Só o comprimento é validado, sem dígito verificador.
	if len(entity.OnlyDigits(input.CPF)) != 11 {
		errors = append(errors, ValidationError{"cpf", "precisa ter 11 dígitos"})
	}

	if strings.TrimSpace(input.BirthDate) == "" {
		errors = append(errors, ValidationError{"data_nascimento", "é obrigatória"})
	}
	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"endereco", "é obrigatório"})
	}
	if !entity.IsValidUF(input.State) {
		errors = append(errors, ValidationError{"estado", "uf inválida"})
	}
	if strings.TrimSpace(input.City) == "" {
		errors = append(errors, ValidationError{"cidade", "é obrigatória"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"telefone", "é obrigatório"})
	}

	switch input.ServiceMode {
	case entity.ServiceModeShop, entity.ServiceModeOnSite, entity.ServiceModeBoth:
	default:
		errors = append(errors, ValidationError{"tipo_atendimento", "deve ser loja, domicilio ou ambos"})
	}

	if len(input.Specialties) == 0 {
		errors = append(errors, ValidationError{"specialties", "selecione ao menos uma especialidade"})
	}
	for _, s := range input.Specialties {
		if !entity.IsValidSpecialty(s) {
			errors = append(errors, ValidationError{"specialties", "especialidade desconhecida: " + s})
		}
	}

	if len(strings.TrimSpace(input.Password)) < 6 {
		errors = append(errors, ValidationError{"senha", "deve ter no mínimo 6 caracteres"})
	}

	if input.Document == nil {
		errors = append(errors, ValidationError{"documento", "envie o documento (JPG/PNG/PDF)"})
	}
	if input.Selfie == nil {
		errors = append(errors, ValidationError{"selfie", "envie a selfie (JPG/PNG)"})
	}

	return errors
}

func ValidateRegisterCustomerInput(input RegisterCustomerInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "é inválido"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"telefone", "é obrigatório"})
	}
	if !entity.IsValidUF(input.State) {
		errors = append(errors, ValidationError{"estado", "uf inválida"})
	}
	if strings.TrimSpace(input.City) == "" {
		errors = append(errors, ValidationError{"cidade", "é obrigatória"})
	}
	if len(strings.TrimSpace(input.Password)) < 6 {
		errors = append(errors, ValidationError{"senha", "deve ter no mínimo 6 caracteres"})
	}

	return errors
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.InstallerID) == "" {
		errors = append(errors, ValidationError{"installer_id", "é obrigatório"})
	}
	if !entity.IsValidUF(input.State) {
		errors = append(errors, ValidationError{"uf", "uf inválida"})
	}
	if strings.TrimSpace(input.City) == "" {
		errors = append(errors, ValidationError{"city", "é obrigatória"})
	}
	if input.Specialty != "" && !entity.IsValidSpecialty(input.Specialty) {
		errors = append(errors, ValidationError{"specialty_requested", "especialidade desconhecida"})
	}

	return errors
}
