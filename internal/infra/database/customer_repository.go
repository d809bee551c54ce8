package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rastroinstala/instala-api/internal/entity"
)

type CustomerRepository struct {
	DB *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	query := `
        INSERT INTO customers (id, name, email, phone, password_hash, state, city, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.PasswordHash, c.State, c.City, c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("erro crítico no banco: %v", err)
		return err
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	c := &entity.Customer{}
	err := r.DB.GetContext(ctx, c, `SELECT * FROM customers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return c, err
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c := &entity.Customer{}
	err := r.DB.GetContext(ctx, c, `SELECT * FROM customers WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return c, err
}
