package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rastroinstala/instala-api/internal/entity"
)

// Session amarra um token opaco a um ator autenticado.
type Session struct {
	Kind entity.ActorKind
	ID   string
}

// Store é o contrato de guarda de sessões. A implementação base vive
// em memória (vida do processo); para escalar horizontalmente basta
// trocar por uma implementação sobre um cache compartilhado.
type Store interface {
	Put(token string, s Session)
	Get(token string) (Session, bool)
	Delete(token string)
}

// NewToken gera o token opaco entregue no login.
func NewToken() string {
	return uuid.NewString()
}

// MemoryStore guarda as sessões num mapa protegido por mutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Put(token string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = s
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *MemoryStore) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
