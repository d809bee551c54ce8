package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer é o cliente que contrata a instalação.
type Customer struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"nome"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"telefone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	State        string    `db:"state" json:"estado"`
	City         string    `db:"city" json:"cidade"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func NewCustomer(name, email, phone, passwordHash, state, city string) (*Customer, error) {
	c := &Customer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        phone,
		PasswordHash: passwordHash,
		State:        NormalizeUF(state),
		City:         city,
		CreatedAt:    time.Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("nome é obrigatório")
	}
	if c.Email == "" {
		return errors.New("email é obrigatório")
	}
	if c.Phone == "" {
		return errors.New("telefone é obrigatório")
	}
	if !IsValidUF(c.State) {
		return errors.New("uf inválida")
	}
	if c.City == "" {
		return errors.New("cidade é obrigatória")
	}
	return nil
}
