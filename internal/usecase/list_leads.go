package usecase

import (
	"context"

	"github.com/rastroinstala/instala-api/internal/entity"
)

// InstallerLeadItem é o lead na caixa de entrada do instalador, com a
// proposta ativa anexada quando existir.
type InstallerLeadItem struct {
	entity.Lead
	CustomerName  string           `json:"user_nome"`
	CustomerEmail string           `json:"user_email"`
	CustomerPhone string           `json:"user_telefone"`
	Proposal      *entity.Proposal `json:"proposal"`
}

// CustomerLeadItem é o lead na visão do cliente, com as propostas
// recebidas.
type CustomerLeadItem struct {
	entity.Lead
	InstallerName     string            `json:"installer_nome"`
	InstallerPhone    string            `json:"installer_telefone"`
	InstallerWhatsApp string            `json:"installer_whatsapp"`
	Proposals         []entity.Proposal `json:"proposals"`
}

type ListLeadsUseCase struct {
	Leads     LeadRepository
	Proposals ProposalRepository
}

func NewListLeadsUseCase(leads LeadRepository, proposals ProposalRepository) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads, Proposals: proposals}
}

func (uc *ListLeadsUseCase) ForInstaller(ctx context.Context, installerID string) ([]InstallerLeadItem, error) {
	rows, err := uc.Leads.ListByInstaller(ctx, installerID)
	if err != nil {
		return nil, storeError(err)
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	byLead, err := uc.proposalsByLead(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]InstallerLeadItem, 0, len(rows))
	for _, r := range rows {
		var proposal *entity.Proposal
		if ps := byLead[r.ID]; len(ps) > 0 {
			p := ps[0]
			proposal = &p
		}
		items = append(items, InstallerLeadItem{
			Lead:          r.Lead,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			CustomerPhone: r.CustomerPhone,
			Proposal:      proposal,
		})
	}
	return items, nil
}

func (uc *ListLeadsUseCase) ForCustomer(ctx context.Context, customerID string) ([]CustomerLeadItem, error) {
	rows, err := uc.Leads.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeError(err)
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	byLead, err := uc.proposalsByLead(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerLeadItem, 0, len(rows))
	for _, r := range rows {
		proposals := byLead[r.ID]
		if proposals == nil {
			proposals = []entity.Proposal{}
		}
		items = append(items, CustomerLeadItem{
			Lead:              r.Lead,
			InstallerName:     r.InstallerName,
			InstallerPhone:    r.InstallerPhone,
			InstallerWhatsApp: r.InstallerWhatsApp,
			Proposals:         proposals,
		})
	}
	return items, nil
}

func (uc *ListLeadsUseCase) proposalsByLead(ctx context.Context, leadIDs []string) (map[string][]entity.Proposal, error) {
	proposals, err := uc.Proposals.ListByLeadIDs(ctx, leadIDs)
	if err != nil {
		return nil, storeError(err)
	}
	byLead := make(map[string][]entity.Proposal, len(proposals))
	for _, p := range proposals {
		byLead[p.LeadID] = append(byLead[p.LeadID], p)
	}
	return byLead, nil
}
