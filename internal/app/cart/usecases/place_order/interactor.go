package place_order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
	"github.com/light-bringer/storefront-checkout/internal/pkg/clock"
	"github.com/light-bringer/storefront-checkout/internal/pkg/committer"
)

// Request identifies the order confirmed by the payment flow.
type Request struct {
	SessionID string
	OrderID   string
}

// Interactor handles order placement confirmation: the order moves to
// placed and the session's cart is cleared.
type Interactor struct {
	stores    *store.Manager
	cartRepo  contracts.CartRepository
	orderRepo contracts.OrderRepository
	committer *committer.Committer
	clock     clock.Clock
	log       *logrus.Entry
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	stores *store.Manager,
	cartRepo contracts.CartRepository,
	orderRepo contracts.OrderRepository,
	committer *committer.Committer,
	clock clock.Clock,
	log *logrus.Entry,
) *Interactor {
	return &Interactor{
		stores:    stores,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		committer: committer,
		clock:     clock,
		log:       log,
	}
}

// Execute confirms placement of a pending order.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Load aggregate
	order, err := i.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return err
	}

	// 2. Call domain method
	if err := order.MarkPlaced(i.clock.Now()); err != nil {
		return err
	}

	// 3. Commit the status change
	plan := committer.NewPlan()
	mut, err := i.orderRepo.UpdateMut(order)
	if err != nil {
		return err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit order placement: %w", err)
	}

	// 4. Clear the cart now that the order is placed
	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return err
	}
	cartStore.Clear()
	if err := i.cartRepo.Delete(ctx, req.SessionID); err != nil {
		return fmt.Errorf("failed to drop cart snapshot: %w", err)
	}

	for _, event := range order.DomainEvents() {
		i.log.WithFields(logrus.Fields{
			"event_type":   event.EventType(),
			"aggregate_id": event.AggregateID(),
		}).Info("domain event")
	}
	return nil
}
