// Package store holds the per-session cart state containers.
//
// A Store is the single source of truth for one session's cart. Each
// mutation swaps in a new immutable Cart snapshot with totals freshly
// derived by the pricing calculator, so a snapshot handed out to a view
// never changes underneath it and stored totals can never drift from
// the items that produced them.
package store

import (
	"sync"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// Subscriber receives every new cart snapshot after a mutation.
type Subscriber func(*domain.Cart)

// Store is an injectable cart state container. All mutations are
// serialized by its mutex; subscribers are notified outside the domain
// but within the mutating call, preserving mutation order.
type Store struct {
	mu     sync.RWMutex
	cart   *domain.Cart
	calc   *domain.PricingCalculator
	policy domain.PricingPolicy
	subs   []Subscriber
}

// New creates a store holding an empty cart.
func New(calc *domain.PricingCalculator, policy domain.PricingPolicy) *Store {
	return &Store{
		cart:   domain.NewCart(),
		calc:   calc,
		policy: policy,
	}
}

// NewFromSnapshot creates a store seeded with a rehydrated cart.
// Totals are recomputed immediately; persisted totals are never trusted.
func NewFromSnapshot(calc *domain.PricingCalculator, policy domain.PricingPolicy, cart *domain.Cart) *Store {
	s := New(calc, policy)
	if cart != nil {
		s.cart = cart.WithTotals(calc.Recompute(cart.Items(), cart.Discount(), policy))
	}
	return s
}

// Snapshot returns the current immutable cart snapshot.
func (s *Store) Snapshot() *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

// Subscribe registers a subscriber for future snapshots.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

// AddOrUpdate adds the item, or replaces the entry with the same
// product id in place. Returns the resulting snapshot.
func (s *Store) AddOrUpdate(item domain.LineItem) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithItem(item)
	})
}

// Increment raises the item's quantity by one, bounded by stock.
func (s *Store) Increment(productID string) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithIncrement(productID)
	})
}

// Decrement lowers the item's quantity by one, bounded below by 1.
func (s *Store) Decrement(productID string) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithDecrement(productID)
	})
}

// Remove deletes the matching entry; absent ids are a no-op.
func (s *Store) Remove(productID string) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithoutItem(productID)
	})
}

// SetDiscount replaces the coupon discount consumed by the calculator.
func (s *Store) SetDiscount(discount *domain.Money) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithDiscount(discount)
	})
}

// SetShippingInfo stores the address record verbatim.
func (s *Store) SetShippingInfo(info domain.ShippingInfo) *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.WithShippingInfo(info)
	})
}

// Clear empties the cart. Used after successful order placement.
func (s *Store) Clear() *domain.Cart {
	return s.apply(func(c *domain.Cart) *domain.Cart {
		return c.Cleared()
	})
}

// apply runs a mutation, recomputes totals on the resulting snapshot,
// swaps it in, and notifies subscribers in registration order.
func (s *Store) apply(mutate func(*domain.Cart) *domain.Cart) *domain.Cart {
	s.mu.Lock()

	next := mutate(s.cart)
	next = next.WithTotals(s.calc.Recompute(next.Items(), next.Discount(), s.policy))
	s.cart = next
	subs := append([]Subscriber{}, s.subs...)

	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return next
}
