package handlers

import (
	"context"
	"net/http"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

// CityProvider resolve os municípios de uma UF (implementado pelo
// client do IBGE).
type CityProvider interface {
	Cities(ctx context.Context, uf string) ([]string, error)
}

type LocationHandler struct {
	DirectoryUC *usecase.DirectoryUseCase
	Cities      CityProvider
}

func NewLocationHandler(directory *usecase.DirectoryUseCase, cities CityProvider) *LocationHandler {
	return &LocationHandler{
		DirectoryUC: directory,
		Cities:      cities,
	}
}

// States (GET /api/states) devolve as 27 UFs com a contagem de
// instaladores aprovados em cada uma, zeros incluídos.
func (h *LocationHandler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.DirectoryUC.States(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, states)
}

// CityCounts (GET /api/cities?uf=XX) devolve as cidades da UF que têm
// pelo menos um instalador aprovado.
func (h *LocationHandler) CityCounts(w http.ResponseWriter, r *http.Request) {
	cities, err := h.DirectoryUC.Cities(r.Context(), r.URL.Query().Get("uf"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// StateCatalog (GET /api/locations/states) é o catálogo estático das
// UFs, usado nos formulários de cadastro.
func (h *LocationHandler) StateCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.States)
}

// CityCatalog (GET /api/locations/cities?uf=XX) repassa os municípios
// do IBGE para o autocomplete de cidade.
func (h *LocationHandler) CityCatalog(w http.ResponseWriter, r *http.Request) {
	uf := entity.NormalizeUF(r.URL.Query().Get("uf"))
	if !entity.IsValidUF(uf) {
		badRequest(w, "uf inválida")
		return
	}

	cities, err := h.Cities.Cities(r.Context(), uf)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "falha ao consultar municípios",
		})
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
