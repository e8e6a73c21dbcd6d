package m_order

// Field name constants for the orders table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "orders"

	OrderID              = "order_id"
	SessionID            = "session_id"
	SubtotalNumerator    = "subtotal_numerator"
	SubtotalDenominator  = "subtotal_denominator"
	TaxNumerator         = "tax_numerator"
	TaxDenominator       = "tax_denominator"
	ShippingNumerator    = "shipping_numerator"
	ShippingDenominator  = "shipping_denominator"
	DiscountNumerator    = "discount_numerator"
	DiscountDenominator  = "discount_denominator"
	TotalNumerator       = "total_numerator"
	TotalDenominator     = "total_denominator"
	ShippingAddress      = "shipping_address"
	ShippingCity         = "shipping_city"
	ShippingState        = "shipping_state"
	ShippingCountry      = "shipping_country"
	ShippingPinCode      = "shipping_pin_code"
	ClientSecret         = "client_secret"
	Status               = "status"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
	PlacedAt             = "placed_at"
)
