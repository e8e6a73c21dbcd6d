package begin_checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
	"github.com/light-bringer/storefront-checkout/internal/pkg/clock"
	"github.com/light-bringer/storefront-checkout/internal/pkg/committer"
)

// Request contains the shipping address submitted at the shipping step.
type Request struct {
	SessionID string
	Address   string
	City      string
	State     string
	Country   string
	PinCode   string
}

// Response carries the created order and its payment token.
type Response struct {
	OrderID      string
	ClientSecret string
}

// Interactor handles the checkout gate: it guards on a non-empty cart,
// persists the shipping address, initiates payment upstream, and
// records the pending order.
type Interactor struct {
	stores    *store.Manager
	cartRepo  contracts.CartRepository
	orderRepo contracts.OrderRepository
	payments  contracts.PaymentInitiator
	committer *committer.Committer
	clock     clock.Clock
	log       *logrus.Entry
}

// NewInteractor creates a new begin checkout interactor.
func NewInteractor(
	stores *store.Manager,
	cartRepo contracts.CartRepository,
	orderRepo contracts.OrderRepository,
	payments contracts.PaymentInitiator,
	committer *committer.Committer,
	clock clock.Clock,
	log *logrus.Entry,
) *Interactor {
	return &Interactor{
		stores:    stores,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		payments:  payments,
		committer: committer,
		clock:     clock,
		log:       log,
	}
}

// Execute runs the checkout gate.
//
// An empty cart fails with ErrCartEmpty before anything is written.
// On payment failure the order is recorded as failed and the cart is
// left untouched, so the submission stays re-submittable.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Guard: no checkout on an empty cart
	cartStore, err := i.stores.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if cartStore.Snapshot().IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	// 2. Persist shipping info into the cart state
	info := domain.ShippingInfo{
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		PinCode: req.PinCode,
	}
	snapshot := cartStore.SetShippingInfo(info)
	if err := i.cartRepo.Save(ctx, req.SessionID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	// 3. Create the pending order from the frozen totals
	now := i.clock.Now()
	order, err := domain.NewOrder(uuid.New().String(), req.SessionID, snapshot.Totals(), info, now)
	if err != nil {
		return nil, err
	}

	// 4. Initiate payment upstream with the current total
	secret, payErr := i.payments.CreatePayment(ctx, snapshot.Totals().Total)
	if payErr != nil {
		if err := order.MarkFailed(i.clock.Now()); err != nil {
			return nil, err
		}
		if err := i.persist(ctx, order); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("payment initiation failed: %w", payErr)
	}
	order.AttachClientSecret(secret)

	// 5. Persist the pending order
	if err := i.persist(ctx, order); err != nil {
		return nil, err
	}

	return &Response{
		OrderID:      order.ID(),
		ClientSecret: secret,
	}, nil
}

func (i *Interactor) persist(ctx context.Context, order *domain.Order) error {
	plan := committer.NewPlan()

	mut, err := i.orderRepo.InsertMut(order)
	if err != nil {
		return err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	for _, event := range order.DomainEvents() {
		i.log.WithFields(logrus.Fields{
			"event_type":   event.EventType(),
			"aggregate_id": event.AggregateID(),
		}).Info("domain event")
	}
	return nil
}
