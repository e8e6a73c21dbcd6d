package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/coupon"
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
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/save_shipping"
	"github.com/light-bringer/storefront-checkout/internal/clients/payment"
	"github.com/light-bringer/storefront-checkout/internal/pkg/clock"
	"github.com/light-bringer/storefront-checkout/internal/pkg/committer"
	transporthttp "github.com/light-bringer/storefront-checkout/internal/transport/http"
)

// Config holds the settings needed to wire up the application.
type Config struct {
	SpannerDB      string
	RedisAddr      string
	PaymentAPIURL  string
	PaymentTimeout time.Duration

	TaxRatePercent int64
	ShippingFee    float64
	CartTTL        time.Duration
	CouponDebounce time.Duration
	RedirectDelay  time.Duration
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client

	CartHandler     *transporthttp.CartHandler
	CheckoutHandler *transporthttp.CheckoutHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config, log *logrus.Logger) (*ServiceOptions, error) {
	// 1. Initialize storage clients
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Pricing policy comes from configuration, never from stored carts
	shippingFee, err := domain.NewMoneyFromFloat(cfg.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("invalid shipping fee: %w", err)
	}
	policy, err := domain.NewPricingPolicy(cfg.TaxRatePercent, shippingFee)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing policy: %w", err)
	}
	calc := domain.NewPricingCalculator()

	// 4. Create repositories and the per-session store manager
	cartRepo := repo.NewCartRepo(redisClient, cfg.CartTTL)
	orderRepo := repo.NewOrderRepo(spannerClient, clk)
	readModel := repo.NewOrderReadModel(spannerClient)
	stores := store.NewManager(cartRepo, calc, policy)

	// 5. Upstream payment client and coupon resolvers
	paymentClient := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentTimeout)
	coupons := coupon.NewRegistry(stores, paymentClient, cfg.CouponDebounce, log.WithField("component", "coupon"))

	// 6. Create command use cases (write operations)
	addItemUseCase := add_item.NewInteractor(stores, cartRepo)
	incrementUseCase := increment_item.NewInteractor(stores, cartRepo)
	decrementUseCase := decrement_item.NewInteractor(stores, cartRepo)
	removeUseCase := remove_item.NewInteractor(stores, cartRepo)
	saveShippingUseCase := save_shipping.NewInteractor(stores, cartRepo)
	beginCheckoutUseCase := begin_checkout.NewInteractor(
		stores, cartRepo, orderRepo, paymentClient, comm, clk,
		log.WithField("component", "checkout"),
	)
	placeOrderUseCase := place_order.NewInteractor(
		stores, cartRepo, orderRepo, comm, clk,
		log.WithField("component", "orders"),
	)

	// 7. Create query use cases (read operations)
	getCartQuery := get_cart.NewQuery(stores)
	listOrdersQuery := list_orders.NewQuery(readModel)

	// 8. Create HTTP handlers
	cartHandler := transporthttp.NewCartHandler(
		addItemUseCase,
		incrementUseCase,
		decrementUseCase,
		removeUseCase,
		getCartQuery,
		coupons,
	)
	checkoutHandler := transporthttp.NewCheckoutHandler(
		saveShippingUseCase,
		beginCheckoutUseCase,
		placeOrderUseCase,
		listOrdersQuery,
		cfg.RedirectDelay,
	)

	return &ServiceOptions{
		SpannerClient:   spannerClient,
		RedisClient:     redisClient,
		CartHandler:     cartHandler,
		CheckoutHandler: checkoutHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
}
