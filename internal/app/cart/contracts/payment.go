package contracts

import (
	"context"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

// DiscountLookup validates a coupon code against the payment backend.
type DiscountLookup interface {
	// LookupDiscount resolves a coupon code to its discount amount.
	// Any transport failure or non-success response is reported as an
	// error and treated the same as an invalid coupon by callers.
	LookupDiscount(ctx context.Context, code string) (*domain.Money, error)
}

// PaymentInitiator creates a payment intent for a checkout amount.
type PaymentInitiator interface {
	// CreatePayment initiates payment for the given amount and returns
	// the provider-issued client secret.
	CreatePayment(ctx context.Context, amount *domain.Money) (string, error)
}
