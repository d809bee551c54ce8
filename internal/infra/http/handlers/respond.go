package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rastroinstala/instala-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// statusFor mapeia código de domínio -> status HTTP. Tudo que a camada
// de usecase devolve passa por aqui; erro desconhecido vira 500.
func statusFor(code string) int {
	switch code {
	case usecase.CodeValidation, usecase.CodeEmailTaken, usecase.CodeInstallerNotEligible:
		return http.StatusBadRequest
	case usecase.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case usecase.CodeNotApproved, usecase.CodeForbidden:
		return http.StatusForbidden
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeAlreadyReviewed, usecase.CodeLeadNotDecidable,
		usecase.CodeLeadAlreadyDecided, usecase.CodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		writeJSON(w, statusFor(de.Code), map[string]string{
			"error": de.Message,
			"code":  de.Code,
		})
		return
	}

	// Falha técnica: loga o detalhe, devolve mensagem genérica.
	log.Printf("erro interno: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "erro interno, tente novamente",
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
