package contracts

import (
	"context"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// CartRepository defines the interface for cart snapshot persistence.
// Snapshots carry items, discount, and shipping info only; totals are
// always recomputed on load and never trusted from storage.
type CartRepository interface {
	// Save persists the cart snapshot for a session
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error

	// Load retrieves the cart snapshot for a session.
	// Returns (nil, nil) when no snapshot exists.
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Delete removes the cart snapshot for a session
	Delete(ctx context.Context, sessionID string) error
}
