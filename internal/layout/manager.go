package layout

import (
	"context"
	"sync"

	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

// Manager hands out one layout store per user, hydrating each from
// storage on first use.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	applier AttributeApplier
	logg    *logger.Logger
	stores  map[string]*Store
}

func NewManager(storage Storage, applier AttributeApplier, logg *logger.Logger) *Manager {
	return &Manager{
		storage: storage,
		applier: applier,
		logg:    logg,
		stores:  make(map[string]*Store),
	}
}

// For returns the user's layout store, creating and initializing it
// on first access.
func (m *Manager) For(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[userID]; ok {
		return s
	}
	s := NewStore(userID, m.storage, m.applier, m.logg)
	s.Init(ctx)
	m.stores[userID] = s
	return s
}
