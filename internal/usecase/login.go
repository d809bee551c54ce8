package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/session"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
	Kind     string `json:"tipo"`
}

type LoginOutput struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id,omitempty"`
}

// LoginUseCase autentica os três tipos de ator. Admin compara com as
// credenciais configuradas no ambiente, não tem linha no banco.
type LoginUseCase struct {
	Customers  CustomerRepository
	Installers InstallerRepository
	Sessions   session.Store

	AdminUser string
	AdminPass string
}

func NewLoginUseCase(customers CustomerRepository, installers InstallerRepository, sessions session.Store, adminUser, adminPass string) *LoginUseCase {
	return &LoginUseCase{
		Customers:  customers,
		Installers: installers,
		Sessions:   sessions,
		AdminUser:  strings.ToLower(strings.TrimSpace(adminUser)),
		AdminPass:  strings.TrimSpace(adminPass),
	}
}

var errBadCredentials = &DomainError{Code: CodeInvalidCredentials, Message: "email ou senha incorretos"}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)
	kind := entity.ActorKind(strings.TrimSpace(input.Kind))

	if email == "" || password == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "email e senha obrigatórios"}
	}

	switch kind {
	case entity.KindAdmin:
		if uc.AdminUser == "" || email != uc.AdminUser || password != uc.AdminPass {
			return nil, &DomainError{Code: CodeInvalidCredentials, Message: "credenciais de admin incorretas"}
		}
		return uc.issue(entity.KindAdmin, ""), nil

	case entity.KindCustomer:
		customer, err := uc.Customers.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errBadCredentials
			}
			return nil, storeError(err)
		}
		if !verifyPassword(password, customer.PasswordHash) {
			return nil, errBadCredentials
		}
		return uc.issue(entity.KindCustomer, customer.ID), nil

	case entity.KindInstaller:
		installer, err := uc.Installers.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errBadCredentials
			}
			return nil, storeError(err)
		}
		// A mensagem de não-aprovado é deliberadamente distinta da de
		// credencial errada.
		if !installer.Approved() {
			return nil, &DomainError{
				Code:    CodeNotApproved,
				Message: "seu cadastro ainda não foi aprovado, aguarde a aprovação para fazer login",
			}
		}
		if !verifyPassword(password, installer.PasswordHash) {
			return nil, errBadCredentials
		}
		return uc.issue(entity.KindInstaller, installer.ID), nil
	}

	return nil, &DomainError{Code: CodeValidation, Message: "informe o tipo de conta: user, installer ou admin"}
}

func (uc *LoginUseCase) issue(kind entity.ActorKind, id string) *LoginOutput {
	token := session.NewToken()
	uc.Sessions.Put(token, session.Session{Kind: kind, ID: id})
	return &LoginOutput{Token: token, Role: string(kind), ID: id}
}
