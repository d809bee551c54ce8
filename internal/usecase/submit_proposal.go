package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type SubmitProposalInput struct {
	LeadID string `json:"lead_id"`
	Price  string `json:"price"`
	ETA    string `json:"eta"`
	Notes  string `json:"notes"`
}

type SubmitProposalOutput struct {
	ID     string `json:"id"`
	LeadID string `json:"lead_id"`
	Status string `json:"status"`
}

// SubmitProposalUseCase registra a resposta do instalador. Só o
// instalador alvo do lead pode propor; reenvio substitui a proposta
// ativa enquanto o cliente não decidir.
type SubmitProposalUseCase struct {
	Leads     LeadRepository
	Proposals ProposalRepository
}

func NewSubmitProposalUseCase(leads LeadRepository, proposals ProposalRepository) *SubmitProposalUseCase {
	return &SubmitProposalUseCase{Leads: leads, Proposals: proposals}
}

func (uc *SubmitProposalUseCase) Execute(ctx context.Context, installerID string, input SubmitProposalInput) (*SubmitProposalOutput, error) {
	if strings.TrimSpace(input.LeadID) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "lead_id obrigatório"}
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, storeError(err)
	}
	// Lead de outro instalador responde igual a lead inexistente.
	if err != nil || lead.InstallerID != installerID {
		return nil, &DomainError{Code: CodeNotFound, Message: "lead não encontrado"}
	}
	if lead.Decided() {
		return nil, &DomainError{Code: CodeLeadAlreadyDecided, Message: "este lead já foi decidido pelo cliente"}
	}

	// Transição guardada antes de tocar na proposta: se o cliente
	// decidiu entre o Find e agora, a corrida aparece aqui como zero
	// linhas afetadas e a proposta aceita permanece intacta.
	if err := uc.Leads.MarkProposalSent(ctx, lead.ID); err != nil {
		if errors.Is(err, entity.ErrStaleStatus) {
			return nil, &DomainError{Code: CodeConflict, Message: "o lead mudou de status durante o envio"}
		}
		return nil, storeError(err)
	}

	proposal := entity.NewProposal(lead.ID,
		strings.TrimSpace(input.Price),
		strings.TrimSpace(input.ETA),
		strings.TrimSpace(input.Notes))

	if err := uc.Proposals.Upsert(ctx, proposal); err != nil {
		return nil, storeError(err)
	}

	return &SubmitProposalOutput{
		ID:     proposal.ID,
		LeadID: lead.ID,
		Status: entity.LeadProposalSent,
	}, nil
}
