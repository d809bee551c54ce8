package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rastroinstala/instala-api/internal/infra/http/middleware"
	"github.com/rastroinstala/instala-api/internal/usecase"
)

type LeadHandler struct {
	CreateUC   *usecase.CreateLeadUseCase
	ListUC     *usecase.ListLeadsUseCase
	ProposalUC *usecase.SubmitProposalUseCase
	DecideUC   *usecase.DecideLeadUseCase
}

func NewLeadHandler(create *usecase.CreateLeadUseCase, list *usecase.ListLeadsUseCase, proposal *usecase.SubmitProposalUseCase, decide *usecase.DecideLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CreateUC:   create,
		ListUC:     list,
		ProposalUC: proposal,
		DecideUC:   decide,
	}
}

// Create (POST /api/leads) abre um pedido de orçamento. Exige sessão
// de cliente; o middleware já garantiu o tipo.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), s.ID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, output)
}

// CustomerLeads (GET /api/user/leads) lista os leads do cliente com as
// propostas recebidas.
func (h *LeadHandler) CustomerLeads(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())

	items, err := h.ListUC.ForCustomer(r.Context(), s.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// InstallerLeads (GET /api/installer/leads) lista os leads recebidos
// pelo instalador logado.
func (h *LeadHandler) InstallerLeads(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())

	items, err := h.ListUC.ForInstaller(r.Context(), s.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SubmitProposal (POST /api/proposals) registra ou substitui a
// proposta do instalador para um lead.
func (h *LeadHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())

	var input usecase.SubmitProposalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	output, err := h.ProposalUC.Execute(r.Context(), s.ID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordProposalSubmitted()
	writeJSON(w, http.StatusCreated, output)
}

// Decide (POST /api/user/leads/{id}/decision) aceita ou recusa a
// proposta. A decisão é terminal.
func (h *LeadHandler) Decide(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	leadID := chi.URLParam(r, "id")

	var input usecase.DecideLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	output, err := h.DecideUC.Execute(r.Context(), s.ID, leadID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadDecision(output.Status)
	writeJSON(w, http.StatusOK, output)
}
