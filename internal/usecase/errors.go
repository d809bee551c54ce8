package usecase

// Códigos de erro de domínio. A camada HTTP mapeia código -> status.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeEmailTaken            = "EMAIL_TAKEN"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeNotApproved           = "NOT_APPROVED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeInstallerNotEligible  = "INSTALLER_NOT_ELIGIBLE"
	CodeAlreadyReviewed       = "ALREADY_REVIEWED"
	CodeLeadNotDecidable      = "LEAD_NOT_DECIDABLE"
	CodeLeadAlreadyDecided    = "LEAD_ALREADY_DECIDED"
	CodeConflict              = "CONFLICT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError é falha de infraestrutura (banco, fila). Sobe como
// erro genérico, nunca vaza detalhe interno para o caller.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func storeError(err error) *TechnicalError {
	return &TechnicalError{
		Code:    "DATABASE_ERROR",
		Message: "falha ao acessar o banco: " + err.Error(),
	}
}
