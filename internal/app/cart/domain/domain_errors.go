package domain

import "errors"

// Domain errors as sentinel values
var (
	// Line item errors
	ErrEmptyProductID   = errors.New("line item product id cannot be empty")
	ErrInvalidItemPrice = errors.New("line item price cannot be negative")
	ErrItemOutOfStock   = errors.New("line item stock must be at least 1")

	// Cart errors
	ErrCartEmpty = errors.New("cart is empty")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrOrderAlreadyPlaced = errors.New("order is already placed")
	ErrInvalidOrderAmount = errors.New("order amount must be positive")

	// Pricing policy errors
	ErrInvalidTaxRate     = errors.New("tax rate percent must be between 0 and 100")
	ErrInvalidShippingFee = errors.New("shipping fee cannot be negative")

	// Coupon errors
	ErrCouponInvalid = errors.New("coupon code is not valid")

	// Storage errors
	ErrMoneyOverflow = errors.New("money value exceeds storage capacity")
)
