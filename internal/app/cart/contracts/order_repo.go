package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// OrderRepository defines the interface for order persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type OrderRepository interface {
	// InsertMut creates a mutation for inserting a new order
	// Returns error if money values exceed int64 bounds
	InsertMut(order *domain.Order) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating an order (only dirty fields)
	UpdateMut(order *domain.Order) (*spanner.Mutation, error)

	// GetByID retrieves an order by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
}
