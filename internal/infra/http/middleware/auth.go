package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFrom recupera a sessão colocada no contexto pelo middleware.
func SessionFrom(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)
	return s, ok
}

// Authenticator resolve o bearer token contra o session store.
type Authenticator struct {
	Sessions session.Store
}

func NewAuthenticator(store session.Store) *Authenticator {
	return &Authenticator{Sessions: store}
}

func bearerToken(r *http.Request) string {
	raw := r.Header.Get("Authorization")
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer"))
	return raw
}

// Require exige sessão válida; sem ela a cadeia para com 401.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		s, ok := a.Sessions.Get(token)
		if token == "" || !ok {
			unauthorized(w, "não autorizado, faça login")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
	})
}

// Optional anexa a sessão quando o token existir, sem barrar nada.
// Usado nas rotas de admin que também aceitam a admin key legada.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if s, ok := a.Sessions.Get(token); ok {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, s))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireKind barra o ator errado com 403.
func RequireKind(kind entity.ActorKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFrom(r.Context())
			if !ok {
				unauthorized(w, "não autorizado")
				return
			}
			if s.Kind != kind {
				forbidden(w, "acesso negado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin aceita duas admissões: sessão de admin ou a admin key
// legada no header x-admin-key (ou query ?key=). As duas valem nas
// mesmas rotas, por compatibilidade com o painel antigo.
func RequireAdmin(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("x-admin-key")
			if key == "" {
				key = r.URL.Query().Get("key")
			}
			if adminKey != "" && key == adminKey {
				next.ServeHTTP(w, r)
				return
			}
			if s, ok := SessionFrom(r.Context()); ok && s.Kind == entity.KindAdmin {
				next.ServeHTTP(w, r)
				return
			}
			unauthorized(w, "não autorizado")
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeJSONError(w, http.StatusUnauthorized, msg)
}

func forbidden(w http.ResponseWriter, msg string) {
	writeJSONError(w, http.StatusForbidden, msg)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
