// Package coupon implements debounced coupon validation against the
// payment backend, with cancellation on supersede: at most one pending
// timer and one in-flight lookup exist per resolver at any instant, and
// a stale response can never clobber a newer input's result.
package coupon

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
	"github.com/light-bringer/storefront-checkout/internal/pkg/debounce"
)

// State is the resolver's validation state.
type State int

const (
	// Idle means no code has been entered since creation or reset.
	Idle State = iota
	// Pending means a code is awaiting its debounce window or lookup.
	Pending
	// Valid means the last lookup accepted the code.
	Valid
	// Invalid means the last lookup rejected or failed for the code.
	Invalid
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Resolver validates coupon codes for one session's cart. Each Input
// re-arms the debounce timer and supersedes any pending or in-flight
// validation. Lookup results feed the cart store's discount field,
// which triggers a totals recompute.
type Resolver struct {
	store  *store.Store
	lookup contracts.DiscountLookup
	delay  time.Duration
	log    *logrus.Entry

	timer debounce.Timer

	mu       sync.Mutex
	state    State
	code     string
	discount *domain.Money
	gen      uint64
	cancel   context.CancelFunc
	closed   bool
}

// NewResolver creates a resolver bound to a session's cart store.
func NewResolver(cartStore *store.Store, lookup contracts.DiscountLookup, delay time.Duration, log *logrus.Entry) *Resolver {
	return &Resolver{
		store:    cartStore,
		lookup:   lookup,
		delay:    delay,
		log:      log,
		state:    Idle,
		discount: domain.ZeroMoney(),
	}
}

// Input registers a new coupon code keystroke. The pending timer and
// any in-flight lookup are cancelled before the new timer is armed.
func (r *Resolver) Input(code string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}

	r.gen++
	gen := r.gen
	r.code = code
	r.state = Pending
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.timer.Arm(r.delay, func() {
		r.fire(gen, code)
	})
}

// Status returns the current state and the discount it produced.
// The discount is zero unless the state is Valid.
func (r *Resolver) Status() (State, *domain.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.discount.Copy()
}

// Code returns the most recently entered coupon code.
func (r *Resolver) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// Close cancels any pending timer and in-flight lookup and resets to
// Idle without touching the cart store.
func (r *Resolver) Close() {
	r.timer.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state = Idle
	r.discount = domain.ZeroMoney()
}

// fire runs when the debounce window elapses with no newer keystroke.
func (r *Resolver) fire(gen uint64, code string) {
	r.mu.Lock()
	if r.closed || gen != r.gen {
		r.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	discount, err := r.lookup.LookupDiscount(ctx, code)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.gen {
		// Superseded while in flight; discard the result.
		return
	}
	r.cancel = nil

	if err != nil {
		// Network failure and invalid coupon are treated identically:
		// discount resets to zero, no retry until a fresh keystroke.
		r.state = Invalid
		r.discount = domain.ZeroMoney()
		r.store.SetDiscount(domain.ZeroMoney())
		r.log.WithField("coupon", code).WithError(err).Debug("coupon rejected")
		return
	}

	r.state = Valid
	r.discount = discount.Copy()
	r.store.SetDiscount(discount)
	r.log.WithFields(logrus.Fields{
		"coupon":   code,
		"discount": discount.String(),
	}).Debug("coupon accepted")
}
