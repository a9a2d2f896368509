// Package session maps client sessions to their carts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pixora/storefront/internal/domain/cart"
)

// Manager owns one cart per session ID. Carts are created lazily on first
// access and evicted after sitting idle for the configured TTL, since carts
// are session-scoped and never persisted.
type Manager struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	carts map[string]*entry
}

type entry struct {
	cart     *cart.Cart
	lastSeen time.Time
}

// NewManager creates a Manager evicting carts idle longer than ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:   ttl,
		now:   time.Now,
		carts: make(map[string]*entry),
	}
}

// Cart returns the cart for the session, creating it when absent, and marks
// the session as recently used.
func (m *Manager) Cart(sessionID string) *cart.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.carts[sessionID]
	if !ok {
		e = &entry{cart: cart.New()}
		m.carts[sessionID] = e
	}
	e.lastSeen = m.now()
	return e.cart
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts)
}

// evict drops sessions idle longer than the TTL.
func (m *Manager) evict(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.carts {
		if now.Sub(e.lastSeen) >= m.ttl {
			delete(m.carts, id)
		}
	}
}

// StartCleanup launches a goroutine that evicts idle sessions at the given
// interval until ctx is cancelled.
func (m *Manager) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				m.evict(now)
			}
		}
	}()
}
