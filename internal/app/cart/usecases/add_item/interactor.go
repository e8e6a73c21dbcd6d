package add_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// Request contains the line item to add or replace.
type Request struct {
	SessionID string
	ProductID string
	Name      string
	Photo     string
	Price     float64
	Stock     int64
	Quantity  int64
}

// Interactor handles the add item use case.
type Interactor struct {
	stores   *store.Manager
	cartRepo contracts.CartRepository
}

// NewInteractor creates a new add item interactor.
func NewInteractor(stores *store.Manager, cartRepo contracts.CartRepository) *Interactor {
	return &Interactor{
		stores:   stores,
		cartRepo: cartRepo,
	}
}

// Execute adds the item to the session's cart, replacing any existing
// entry with the same product id, and persists the new snapshot.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	price, err := domain.NewMoneyFromFloat(req.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid item price: %w", err)
	}

	item, err := domain.NewLineItem(req.ProductID, req.Name, req.Photo, price, req.Stock, req.Quantity)
	if err != nil {
		return nil, err
	}

	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cartStore.AddOrUpdate(item)

	if err := i.cartRepo.Save(ctx, req.SessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return snapshot, nil
}
