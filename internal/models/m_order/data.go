package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderID             string           `spanner:"order_id"`
	SessionID           string           `spanner:"session_id"`
	SubtotalNumerator   int64            `spanner:"subtotal_numerator"`
	SubtotalDenominator int64            `spanner:"subtotal_denominator"`
	TaxNumerator        int64            `spanner:"tax_numerator"`
	TaxDenominator      int64            `spanner:"tax_denominator"`
	ShippingNumerator   int64            `spanner:"shipping_numerator"`
	ShippingDenominator int64            `spanner:"shipping_denominator"`
	DiscountNumerator   int64            `spanner:"discount_numerator"`
	DiscountDenominator int64            `spanner:"discount_denominator"`
	TotalNumerator      int64            `spanner:"total_numerator"`
	TotalDenominator    int64            `spanner:"total_denominator"`
	ShippingAddress     string           `spanner:"shipping_address"`
	ShippingCity        string           `spanner:"shipping_city"`
	ShippingState       string           `spanner:"shipping_state"`
	ShippingCountry     string           `spanner:"shipping_country"`
	ShippingPinCode     string           `spanner:"shipping_pin_code"`
	ClientSecret        string           `spanner:"client_secret"`
	Status              string           `spanner:"status"`
	CreatedAt           time.Time        `spanner:"created_at"`
	UpdatedAt           time.Time        `spanner:"updated_at"`
	PlacedAt            spanner.NullTime `spanner:"placed_at"`
}
