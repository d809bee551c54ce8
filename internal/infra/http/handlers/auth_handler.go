package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rastroinstala/instala-api/internal/infra/http/middleware"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

type AuthHandler struct {
	LoginUC    *usecase.LoginUseCase
	ProfileUC  *usecase.ProfileUseCase
	RegisterUC *usecase.RegisterCustomerUseCase
}

func NewAuthHandler(login *usecase.LoginUseCase, profile *usecase.ProfileUseCase, register *usecase.RegisterCustomerUseCase) *AuthHandler {
	return &AuthHandler{
		LoginUC:    login,
		ProfileUC:  profile,
		RegisterUC: register,
	}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Me (GET /api/me) devolve o perfil da sessão corrente.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "não autorizado"})
		return
	}

	output, err := h.ProfileUC.Execute(r.Context(), s)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// RegisterCustomer (POST /api/auth/register-user, alias POST /api/users)
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
