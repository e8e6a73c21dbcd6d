package remove_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// Request identifies the line item to remove.
type Request struct {
	SessionID string
	ProductID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	stores   *store.Manager
	cartRepo contracts.CartRepository
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(stores *store.Manager, cartRepo contracts.CartRepository) *Interactor {
	return &Interactor{
		stores:   stores,
		cartRepo: cartRepo,
	}
}

// Execute deletes the matching entry. Removing an absent id is a no-op,
// which makes the operation idempotent.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cartStore.Remove(req.ProductID)

	if err := i.cartRepo.Save(ctx, req.SessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return snapshot, nil
}
