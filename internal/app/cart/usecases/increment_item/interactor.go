package increment_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// Request identifies the line item to increment.
type Request struct {
	SessionID string
	ProductID string
}

// Interactor handles the increment item use case.
type Interactor struct {
	stores   *store.Manager
	cartRepo contracts.CartRepository
}

// NewInteractor creates a new increment item interactor.
func NewInteractor(stores *store.Manager, cartRepo contracts.CartRepository) *Interactor {
	return &Interactor{
		stores:   stores,
		cartRepo: cartRepo,
	}
}

// Execute raises the item's quantity by one, bounded by its stock.
// At-stock items and absent ids are silently absorbed as no-ops.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cartStore.Increment(req.ProductID)

	if err := i.cartRepo.Save(ctx, req.SessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return snapshot, nil
}
