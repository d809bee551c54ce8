package usecase

import (
	"context"
	"errors"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/session"
)

type ProfileOutput struct {
	Kind  string `json:"tipo"`
	Role  string `json:"role"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
	State string `json:"estado,omitempty"`
	City  string `json:"cidade,omitempty"`
}

// ProfileUseCase resolve a sessão corrente para o front decidir qual
// painel abrir.
type ProfileUseCase struct {
	Customers  CustomerRepository
	Installers InstallerRepository
}

func NewProfileUseCase(customers CustomerRepository, installers InstallerRepository) *ProfileUseCase {
	return &ProfileUseCase{Customers: customers, Installers: installers}
}

var errInvalidSession = &DomainError{Code: CodeInvalidCredentials, Message: "sessão inválida"}

func (uc *ProfileUseCase) Execute(ctx context.Context, s session.Session) (*ProfileOutput, error) {
	switch s.Kind {
	case entity.KindAdmin:
		return &ProfileOutput{Kind: string(entity.KindAdmin), Role: string(entity.KindAdmin)}, nil

	case entity.KindCustomer:
		customer, err := uc.Customers.FindByID(ctx, s.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errInvalidSession
			}
			return nil, storeError(err)
		}
		return &ProfileOutput{
			Kind:  string(entity.KindCustomer),
			Role:  string(entity.KindCustomer),
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
			State: customer.State,
			City:  customer.City,
		}, nil

	case entity.KindInstaller:
		installer, err := uc.Installers.FindByID(ctx, s.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errInvalidSession
			}
			return nil, storeError(err)
		}
		// Instalador des-aprovado depois do login perde a sessão.
		if !installer.Approved() {
			return nil, errInvalidSession
		}
		return &ProfileOutput{
			Kind:  string(entity.KindInstaller),
			Role:  string(entity.KindInstaller),
			ID:    installer.ID,
			Name:  installer.Name,
			Email: installer.Email,
			State: installer.State,
			City:  installer.City,
		}, nil
	}

	return nil, errInvalidSession
}
