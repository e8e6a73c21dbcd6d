package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// Manager owns one Store per session. The first access for a session
// rehydrates its snapshot from the cart repository; later accesses hit
// the in-memory container.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	repo   contracts.CartRepository
	calc   *domain.PricingCalculator
	policy domain.PricingPolicy
}

// NewManager creates a session store manager.
func NewManager(repo contracts.CartRepository, calc *domain.PricingCalculator, policy domain.PricingPolicy) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		repo:   repo,
		calc:   calc,
		policy: policy,
	}
}

// Get returns the store for a session, rehydrating it on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// Rehydrate outside the lock; the repository call may block.
	cart, err := m.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate cart for session %s: %w", sessionID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		// Lost the race to a concurrent first access.
		return s, nil
	}

	var s *Store
	if cart != nil {
		s = NewFromSnapshot(m.calc, m.policy, cart)
	} else {
		s = New(m.calc, m.policy)
	}
	m.stores[sessionID] = s
	return s, nil
}

// Evict drops a session's container from memory. The persisted
// snapshot, if any, is untouched.
func (m *Manager) Evict(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
