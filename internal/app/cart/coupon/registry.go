package coupon

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// Registry owns one Resolver per session, created lazily against the
// session's cart store.
type Registry struct {
	mu        sync.Mutex
	resolvers map[string]*Resolver

	stores *store.Manager
	lookup contracts.DiscountLookup
	delay  time.Duration
	log    *logrus.Entry
}

// NewRegistry creates a resolver registry.
func NewRegistry(stores *store.Manager, lookup contracts.DiscountLookup, delay time.Duration, log *logrus.Entry) *Registry {
	return &Registry{
		resolvers: make(map[string]*Resolver),
		stores:    stores,
		lookup:    lookup,
		delay:     delay,
		log:       log,
	}
}

// Get returns the resolver for a session, creating it on first access.
func (reg *Registry) Get(ctx context.Context, sessionID string) (*Resolver, error) {
	reg.mu.Lock()
	if r, ok := reg.resolvers[sessionID]; ok {
		reg.mu.Unlock()
		return r, nil
	}
	reg.mu.Unlock()

	cartStore, err := reg.stores.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if r, ok := reg.resolvers[sessionID]; ok {
		return r, nil
	}
	r := NewResolver(cartStore, reg.lookup, reg.delay, reg.log.WithField("session_id", sessionID))
	reg.resolvers[sessionID] = r
	return r, nil
}

// Release closes and drops a session's resolver, cancelling any pending
// validation without side effects on the cart.
func (reg *Registry) Release(sessionID string) {
	reg.mu.Lock()
	r, ok := reg.resolvers[sessionID]
	if ok {
		delete(reg.resolvers, sessionID)
	}
	reg.mu.Unlock()

	if ok {
		r.Close()
	}
}
