package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rastroinstala/instala-api/internal/infra/http/middleware"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

type AdminHandler struct {
	ReviewUC    *usecase.ReviewInstallerUseCase
	DirectoryUC *usecase.DirectoryUseCase
}

func NewAdminHandler(review *usecase.ReviewInstallerUseCase, directory *usecase.DirectoryUseCase) *AdminHandler {
	return &AdminHandler{
		ReviewUC:    review,
		DirectoryUC: directory,
	}
}

// Pending (GET /api/admin/installers/pending) é a fila de moderação,
// mais antigo primeiro.
func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	installers, err := h.DirectoryUC.PendingQueue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, installers)
}

// List (GET /api/admin/installers) lista todos os cadastros, com
// filtro opcional de status e busca livre.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	installers, err := h.DirectoryUC.ListAll(r.Context(), q.Get("status"), q.Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, installers)
}

// Approve (POST /api/admin/installers/{id}/approve)
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ReviewUC.Approve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordInstallerReview("approved")
	writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

// Reject (POST /api/admin/installers/{id}/reject)
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ReviewUC.Reject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordInstallerReview("rejected")
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}
