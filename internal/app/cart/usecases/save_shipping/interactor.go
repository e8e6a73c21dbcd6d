package save_shipping

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// Request contains the shipping address to store.
type Request struct {
	SessionID string
	Address   string
	City      string
	State     string
	Country   string
	PinCode   string
}

// Interactor handles the save shipping info use case.
type Interactor struct {
	stores   *store.Manager
	cartRepo contracts.CartRepository
}

// NewInteractor creates a new save shipping interactor.
func NewInteractor(stores *store.Manager, cartRepo contracts.CartRepository) *Interactor {
	return &Interactor{
		stores:   stores,
		cartRepo: cartRepo,
	}
}

// Execute stores the address record verbatim. Field-level validation is
// the form layer's responsibility, not this store's.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cartStore.SetShippingInfo(domain.ShippingInfo{
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		PinCode: req.PinCode,
	})

	if err := i.cartRepo.Save(ctx, req.SessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return snapshot, nil
}
