package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type InstallerRepository struct {
	DB *sqlx.DB
}

func NewInstallerRepository(db *sqlx.DB) *InstallerRepository {
	return &InstallerRepository{DB: db}
}

func (r *InstallerRepository) Create(ctx context.Context, i *entity.Installer) error {
	query := `
        INSERT INTO installers
            (id, name, email, cpf, birth_date, address, state, city, phone, whatsapp,
             specialties, service_mode, document_path, selfie_path, password_hash,
             status, created_at)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.DB.ExecContext(ctx, query,
		i.ID, i.Name, i.Email, i.CPF, i.BirthDate, i.Address, i.State, i.City,
		i.Phone, i.WhatsApp, i.Specialties, i.ServiceMode,
		i.DocumentPath, i.SelfiePath, i.PasswordHash, i.Status, i.CreatedAt)
	return err
}

func (r *InstallerRepository) FindByID(ctx context.Context, id string) (*entity.Installer, error) {
	i := &entity.Installer{}
	err := r.DB.GetContext(ctx, i, `SELECT * FROM installers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return i, err
}

func (r *InstallerRepository) FindByEmail(ctx context.Context, email string) (*entity.Installer, error) {
	i := &entity.Installer{}
	err := r.DB.GetContext(ctx, i, `SELECT * FROM installers WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return i, err
}

// Review aplica a decisão do admin. O UPDATE é condicionado a
// status='pending': cadastro já revisado devolve ErrStaleStatus em vez
// de recarimbar a decisão.
func (r *InstallerRepository) Review(ctx context.Context, id, status string, reviewedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE installers SET status = $1, reviewed_at = $2 WHERE id = $3 AND status = 'pending'`,
		status, reviewedAt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.DB.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM installers WHERE id = $1)`, id); err != nil {
			return err
		}
		if exists {
			return entity.ErrStaleStatus
		}
		return entity.ErrNotFound
	}
	return nil
}

// ListApproved é a vitrine pública: só aprovados, UF+cidade exatos,
// especialidades em OR e busca por substring, mais novos primeiro.
func (r *InstallerRepository) ListApproved(ctx context.Context, f entity.DirectoryFilter) ([]entity.Installer, error) {
	where := []string{"status = 'approved'", "state = $1", "city = $2"}
	args := []interface{}{f.State, f.City}

	if len(f.Specialties) > 0 {
		args = append(args, pq.Array(f.Specialties))
		where = append(where, fmt.Sprintf("specialties && $%d", len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(
            LOWER(name) LIKE $%d OR
            LOWER(array_to_string(specialties, ',')) LIKE $%d OR
            LOWER(phone) LIKE $%d OR
            LOWER(whatsapp) LIKE $%d)`, n, n, n, n))
	}

	query := `SELECT * FROM installers WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at DESC`

	installers := []entity.Installer{}
	err := r.DB.SelectContext(ctx, &installers, query, args...)
	return installers, err
}

// ListAll é a listagem do admin: qualquer status, busca estendida.
func (r *InstallerRepository) ListAll(ctx context.Context, status, search string) ([]entity.Installer, error) {
	where := []string{}
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(
            LOWER(name) LIKE $%d OR
            LOWER(city) LIKE $%d OR
            LOWER(state) LIKE $%d OR
            LOWER(cpf) LIKE $%d OR
            LOWER(array_to_string(specialties, ',')) LIKE $%d OR
            LOWER(status) LIKE $%d)`, n, n, n, n, n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	installers := []entity.Installer{}
	err := r.DB.SelectContext(ctx, &installers,
		`SELECT * FROM installers`+clause+` ORDER BY created_at DESC`, args...)
	return installers, err
}

func (r *InstallerRepository) CountApprovedByState(ctx context.Context) ([]entity.StateCount, error) {
	counts := []entity.StateCount{}
	err := r.DB.SelectContext(ctx, &counts, `
        SELECT state, COUNT(*) AS total
        FROM installers
        WHERE status = 'approved'
        GROUP BY state`)
	return counts, err
}

func (r *InstallerRepository) CountApprovedCities(ctx context.Context, uf string) ([]entity.CityCount, error) {
	counts := []entity.CityCount{}
	err := r.DB.SelectContext(ctx, &counts, `
        SELECT city, COUNT(*) AS total
        FROM installers
        WHERE status = 'approved' AND state = $1
        GROUP BY city
        ORDER BY city ASC`, uf)
	return counts, err
}
