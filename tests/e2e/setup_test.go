//go:build integration

package e2e

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/queries/list_orders"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/repo"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/begin_checkout"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/decrement_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/increment_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/place_order"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-checkout/internal/pkg/committer"
	"github.com/light-bringer/storefront-checkout/tests/testutil"
)

// memoryCartRepo is an in-memory CartRepository so end-to-end flows run
// against the Spanner emulator without a Redis instance.
type memoryCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *memoryCartRepo) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = cart
	return nil
}

func (r *memoryCartRepo) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carts[sessionID], nil
}

func (r *memoryCartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// fakePayments is a scriptable PaymentInitiator.
type fakePayments struct {
	mu      sync.Mutex
	fail    bool
	amounts []float64
}

func (f *fakePayments) CreatePayment(_ context.Context, amount *domain.Money) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amounts = append(f.amounts, amount.Float64())
	if f.fail {
		return "", fmt.Errorf("payment provider unavailable")
	}
	return fmt.Sprintf("sec_%03d", len(f.amounts)), nil
}

func (f *fakePayments) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	AddItem       *add_item.Interactor
	IncrementItem *increment_item.Interactor
	DecrementItem *decrement_item.Interactor
	RemoveItem    *remove_item.Interactor
	BeginCheckout *begin_checkout.Interactor
	PlaceOrder    *place_order.Interactor

	// Queries
	GetCart    *get_cart.Query
	ListOrders *list_orders.Query

	// Infrastructure
	Stores   *store.Manager
	Payments *fakePayments
	Client   *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := testutil.NewMockClock()
	comm := committer.NewCommitter(client)

	log := logrus.New()
	log.SetOutput(io.Discard)
	entry := logrus.NewEntry(log)

	fee, err := domain.NewMoney(20, 1)
	if err != nil {
		t.Fatal(err)
	}
	policy, err := domain.NewPricingPolicy(10, fee)
	if err != nil {
		t.Fatal(err)
	}
	calc := domain.NewPricingCalculator()

	cartRepo := newMemoryCartRepo()
	orderRepo := repo.NewOrderRepo(client, clk)
	readModel := repo.NewOrderReadModel(client)
	stores := store.NewManager(cartRepo, calc, policy)
	payments := &fakePayments{}

	services := &Services{
		AddItem:       add_item.NewInteractor(stores, cartRepo),
		IncrementItem: increment_item.NewInteractor(stores, cartRepo),
		DecrementItem: decrement_item.NewInteractor(stores, cartRepo),
		RemoveItem:    remove_item.NewInteractor(stores, cartRepo),
		BeginCheckout: begin_checkout.NewInteractor(stores, cartRepo, orderRepo, payments, comm, clk, entry),
		PlaceOrder:    place_order.NewInteractor(stores, cartRepo, orderRepo, comm, clk, entry),
		GetCart:       get_cart.NewQuery(stores),
		ListOrders:    list_orders.NewQuery(readModel),
		Stores:        stores,
		Payments:      payments,
		Client:        client,
	}

	return services, cleanup
}
