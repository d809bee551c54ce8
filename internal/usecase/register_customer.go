package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type RegisterCustomerInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Phone    string `json:"telefone"`
	Password string `json:"senha"`
	State    string `json:"estado"`
	City     string `json:"cidade"`
}

type RegisterCustomerOutput struct {
	ID string `json:"id"`
}

type RegisterCustomerUseCase struct {
	Customers CustomerRepository
}

func NewRegisterCustomerUseCase(customers CustomerRepository) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{Customers: customers}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, input RegisterCustomerInput) (*RegisterCustomerOutput, error) {
	if errs := ValidateRegisterCustomerInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	passwordHash, err := hashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "falha ao processar a senha"}
	}

	customer, err := entity.NewCustomer(
		strings.TrimSpace(input.Name),
		input.Email,
		strings.TrimSpace(input.Phone),
		passwordHash,
		input.State,
		strings.TrimSpace(input.City),
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Customers.Create(ctx, customer); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: CodeEmailTaken, Message: "este email já está cadastrado"}
		}
		return nil, storeError(err)
	}

	return &RegisterCustomerOutput{ID: customer.ID}, nil
}
