package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type DecideLeadInput struct {
	Decision string `json:"decision"`
}

type DecideLeadOutput struct {
	Status string `json:"status"`
	// Link de contato pré-preenchido, só em caso de aceite. Nunca é
	// persistido.
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// DecideLeadUseCase aplica a decisão terminal do cliente dono do lead.
type DecideLeadUseCase struct {
	Leads      LeadRepository
	Installers InstallerRepository
}

func NewDecideLeadUseCase(leads LeadRepository, installers InstallerRepository) *DecideLeadUseCase {
	return &DecideLeadUseCase{Leads: leads, Installers: installers}
}

func (uc *DecideLeadUseCase) Execute(ctx context.Context, customerID, leadID string, input DecideLeadInput) (*DecideLeadOutput, error) {
	var status string
	switch input.Decision {
	case "accepted":
		status = entity.LeadAccepted
	case "rejected":
		status = entity.LeadRejected
	default:
		return nil, &DomainError{Code: CodeValidation, Message: "decision deve ser accepted ou rejected"}
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, storeError(err)
	}
	// Lead de outro cliente responde igual a lead inexistente.
	if err != nil || lead.CustomerID != customerID {
		return nil, &DomainError{Code: CodeNotFound, Message: "lead não encontrado"}
	}
	if lead.Decided() {
		return nil, &DomainError{Code: CodeLeadAlreadyDecided, Message: "este lead já foi decidido"}
	}
	if lead.Status != entity.LeadProposalSent {
		return nil, &DomainError{Code: CodeLeadNotDecidable, Message: "aguarde uma proposta antes de decidir"}
	}

	if err := uc.Leads.Decide(ctx, lead.ID, status, time.Now()); err != nil {
		if errors.Is(err, entity.ErrStaleStatus) {
			return nil, &DomainError{Code: CodeConflict, Message: "o lead mudou de status durante a decisão"}
		}
		return nil, storeError(err)
	}

	out := &DecideLeadOutput{Status: status}

	if status == entity.LeadAccepted {
		installer, err := uc.Installers.FindByID(ctx, lead.InstallerID)
		if err == nil {
			out.WhatsAppURL = entity.WhatsAppURL(installer.WhatsApp)
		}
		// Sem o instalador não há link, mas a decisão já valeu.
	}

	return out, nil
}
