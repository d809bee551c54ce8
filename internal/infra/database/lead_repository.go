package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rastroinstala/instala-api/internal/entity"
)

// InstallerLeadRow é o lead como o instalador enxerga: com o contato
// do cliente que pediu o orçamento.
type InstallerLeadRow struct {
	entity.Lead
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`
}

// CustomerLeadRow é o lead como o cliente enxerga: com o contato do
// instalador alvo.
type CustomerLeadRow struct {
	entity.Lead
	InstallerName     string `db:"installer_name"`
	InstallerPhone    string `db:"installer_phone"`
	InstallerWhatsApp string `db:"installer_whatsapp"`
}

type LeadRepository struct {
	DB *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
        INSERT INTO leads
            (id, customer_id, installer_id, state, city, specialty_requested, details, status, created_at)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.CustomerID, l.InstallerID, l.State, l.City,
		l.Specialty, l.Details, l.Status, l.CreatedAt)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	l := &entity.Lead{}
	err := r.DB.GetContext(ctx, l, `SELECT * FROM leads WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}

// MarkProposalSent move pending -> proposal_sent. Reenvio de proposta é
// permitido enquanto não houver decisão, então proposal_sent também é
// um estado de partida aceito. Lead decidido devolve ErrStaleStatus.
func (r *LeadRepository) MarkProposalSent(ctx context.Context, leadID string) error {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE leads SET status = $1
        WHERE id = $2 AND status IN ($3, $1)`,
		entity.LeadProposalSent, leadID, entity.LeadPending)
	if err != nil {
		return err
	}
	return staleIfNoRows(res)
}

// Decide aplica a decisão terminal do cliente. Compare-and-swap no
// status: só sai de proposal_sent, então decisão dupla (ou corrida
// perdida) devolve ErrStaleStatus em vez de sobrescrever.
func (r *LeadRepository) Decide(ctx context.Context, leadID, status string, decidedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE leads SET status = $1, decided_at = $2
        WHERE id = $3 AND status = $4`,
		status, decidedAt, leadID, entity.LeadProposalSent)
	if err != nil {
		return err
	}
	return staleIfNoRows(res)
}

func (r *LeadRepository) ListByInstaller(ctx context.Context, installerID string) ([]InstallerLeadRow, error) {
	rows := []InstallerLeadRow{}
	err := r.DB.SelectContext(ctx, &rows, `
        SELECT l.*,
               u.name AS customer_name,
               u.email AS customer_email,
               u.phone AS customer_phone
        FROM leads l
        JOIN customers u ON u.id = l.customer_id
        WHERE l.installer_id = $1
        ORDER BY l.created_at DESC`, installerID)
	return rows, err
}

func (r *LeadRepository) ListByCustomer(ctx context.Context, customerID string) ([]CustomerLeadRow, error) {
	rows := []CustomerLeadRow{}
	err := r.DB.SelectContext(ctx, &rows, `
        SELECT l.*,
               i.name AS installer_name,
               i.phone AS installer_phone,
               i.whatsapp AS installer_whatsapp
        FROM leads l
        JOIN installers i ON i.id = l.installer_id
        WHERE l.customer_id = $1
        ORDER BY l.created_at DESC`, customerID)
	return rows, err
}

func staleIfNoRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrStaleStatus
	}
	return nil
}
