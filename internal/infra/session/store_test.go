package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rastroinstala/instala-api/internal/entity"
	"github.com/rastroinstala/instala-api/internal/infra/session"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	token := session.NewToken()

	store.Put(token, session.Session{Kind: entity.KindCustomer, ID: "cust-1"})

	s, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, entity.KindCustomer, s.Kind)
	assert.Equal(t, "cust-1", s.ID)

	store.Delete(token)
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := session.NewMemoryStore()
	_, ok := store.Get("nunca-emitido")
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := session.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := session.NewToken()
			store.Put(token, session.Session{Kind: entity.KindInstaller, ID: "inst"})
			_, ok := store.Get(token)
			assert.True(t, ok)
			store.Delete(token)
		}()
	}
	wg.Wait()
}
