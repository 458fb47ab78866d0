package cart

import "sync"

// Manager owns one cart per session for the lifetime of the process.
// Carts are created when a session starts and simply forgotten when
// the process exits; nothing is persisted.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Create registers an empty cart for a new session, replacing any
// previous cart under the same id.
func (m *Manager) Create(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := New()
	m.carts[sessionID] = c
	return c
}

// Get returns the session's cart. A session whose cart is gone (the
// process restarted since the token was issued) gets a fresh empty
// one — cart state is volatile by design.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.RLock()
	c, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if ok {
		return c
	}
	return m.Create(sessionID)
}
