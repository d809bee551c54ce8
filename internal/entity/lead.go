package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ciclo de vida de um lead. As transições válidas são só estas:
//
//	pending -> proposal_sent -> accepted | rejected
//
// accepted e rejected são terminais. Toda transição no banco é um
// UPDATE condicionado ao status atual.
const (
	LeadPending      = "pending"
	LeadProposalSent = "proposal_sent"
	LeadAccepted     = "accepted"
	LeadRejected     = "rejected"
)

// Lead é o pedido de orçamento de um cliente para um instalador
// aprovado.
type Lead struct {
	ID          string     `db:"id" json:"id"`
	CustomerID  string     `db:"customer_id" json:"user_id"`
	InstallerID string     `db:"installer_id" json:"installer_id"`
	State       string     `db:"state" json:"uf"`
	City        string     `db:"city" json:"city"`
	Specialty   string     `db:"specialty_requested" json:"specialty_requested"`
	Details     string     `db:"details" json:"details"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	DecidedAt   *time.Time `db:"decided_at" json:"decided_at,omitempty"`
}

func NewLead(customerID, installerID, state, city, specialty, details string) *Lead {
	return &Lead{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		InstallerID: installerID,
		State:       NormalizeUF(state),
		City:        city,
		Specialty:   specialty,
		Details:     details,
		Status:      LeadPending,
		CreatedAt:   time.Now(),
	}
}

// Decided diz se o lead já recebeu uma decisão terminal.
func (l *Lead) Decided() bool {
	return l.Status == LeadAccepted || l.Status == LeadRejected
}

// Proposal é a resposta do instalador a um lead. Cada lead carrega no
// máximo uma proposta ativa; reenvio substitui a anterior.
type Proposal struct {
	ID        string    `db:"id" json:"id"`
	LeadID    string    `db:"lead_id" json:"lead_id"`
	Price     string    `db:"price" json:"price"`
	ETA       string    `db:"eta" json:"eta"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewProposal(leadID, price, eta, notes string) *Proposal {
	now := time.Now()
	return &Proposal{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Price:     price,
		ETA:       eta,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
