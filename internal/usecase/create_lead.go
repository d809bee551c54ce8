package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type CreateLeadInput struct {
	InstallerID string `json:"installer_id"`
	State       string `json:"uf"`
	City        string `json:"city"`
	Specialty   string `json:"specialty_requested"`
	Details     string `json:"details"`
}

type CreateLeadOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateLeadUseCase abre um pedido de orçamento. O alvo precisa estar
// aprovado no momento da criação; depois disso o lead segue vivo mesmo
// que o instalador seja des-aprovado.
type CreateLeadUseCase struct {
	Leads      LeadRepository
	Installers InstallerRepository
}

func NewCreateLeadUseCase(leads LeadRepository, installers InstallerRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Installers: installers}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, customerID string, input CreateLeadInput) (*CreateLeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	installer, err := uc.Installers.FindByID(ctx, input.InstallerID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, storeError(err)
	}
	// Inexistente e não-aprovado têm a mesma resposta: nada de vazar
	// que o cadastro existe mas foi rejeitado.
	if err != nil || !installer.Approved() {
		return nil, &DomainError{Code: CodeInstallerNotEligible, Message: "instalador não encontrado ou não aprovado"}
	}

	lead := entity.NewLead(
		customerID,
		installer.ID,
		input.State,
		strings.TrimSpace(input.City),
		strings.TrimSpace(input.Specialty),
		strings.TrimSpace(input.Details),
	)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, storeError(err)
	}

	return &CreateLeadOutput{ID: lead.ID, Status: lead.Status}, nil
}
