package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type ProposalRepository struct {
	DB *sqlx.DB
}

func NewProposalRepository(db *sqlx.DB) *ProposalRepository {
	return &ProposalRepository{DB: db}
}

// Upsert grava a proposta ativa do lead. lead_id é UNIQUE: reenvio
// substitui preço/prazo/observações, nunca acumula uma segunda linha.
func (r *ProposalRepository) Upsert(ctx context.Context, p *entity.Proposal) error {
	query := `
        INSERT INTO proposals (id, lead_id, price, eta, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (lead_id) DO UPDATE SET
            price = EXCLUDED.price,
            eta = EXCLUDED.eta,
            notes = EXCLUDED.notes,
            updated_at = EXCLUDED.updated_at
        RETURNING id`
	return r.DB.QueryRowContext(ctx, query,
		p.ID, p.LeadID, p.Price, p.ETA, p.Notes, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID)
}

func (r *ProposalRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.Proposal, error) {
	p := &entity.Proposal{}
	err := r.DB.GetContext(ctx, p, `SELECT * FROM proposals WHERE lead_id = $1`, leadID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProposalRepository) ListByLeadIDs(ctx context.Context, leadIDs []string) ([]entity.Proposal, error) {
	if len(leadIDs) == 0 {
		return []entity.Proposal{}, nil
	}
	proposals := []entity.Proposal{}
	err := r.DB.SelectContext(ctx, &proposals,
		`SELECT * FROM proposals WHERE lead_id = ANY($1)`, pq.Array(leadIDs))
	return proposals, err
}
