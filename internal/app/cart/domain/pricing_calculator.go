package domain

import "math/big"

// Totals holds the monetary fields derived from a cart's line items and
// discount. A Totals value is only ever produced by the PricingCalculator;
// mutations mark it stale, they never patch it incrementally.
type Totals struct {
	Subtotal        *Money
	Tax             *Money
	ShippingCharges *Money
	Discount        *Money
	Total           *Money
}

// ZeroTotals returns totals with every field at zero.
func ZeroTotals() Totals {
	return Totals{
		Subtotal:        ZeroMoney(),
		Tax:             ZeroMoney(),
		ShippingCharges: ZeroMoney(),
		Discount:        ZeroMoney(),
		Total:           ZeroMoney(),
	}
}

// PricingPolicy carries the numeric pricing constants. Tax rate and the
// flat shipping fee are business configuration, not derived quantities.
type PricingPolicy struct {
	taxRate     *big.Rat
	shippingFee *Money
}

// NewPricingPolicy creates a policy from a tax percentage (0-100) and a
// flat shipping fee charged on any non-empty cart.
func NewPricingPolicy(taxRatePercent int64, shippingFee *Money) (PricingPolicy, error) {
	if taxRatePercent < 0 || taxRatePercent > 100 {
		return PricingPolicy{}, ErrInvalidTaxRate
	}
	if shippingFee == nil || shippingFee.IsNegative() {
		return PricingPolicy{}, ErrInvalidShippingFee
	}
	return PricingPolicy{
		taxRate:     big.NewRat(taxRatePercent, 100),
		shippingFee: shippingFee.Copy(),
	}, nil
}

// TaxRate returns the tax multiplier (percentage / 100).
func (p PricingPolicy) TaxRate() *big.Rat {
	return new(big.Rat).Set(p.taxRate)
}

// ShippingFee returns the flat shipping fee.
func (p PricingPolicy) ShippingFee() *Money {
	return p.shippingFee.Copy()
}

// PricingCalculator is a domain service deriving cart totals. It is a
// pure function of (items, discount, policy): the same inputs always
// produce the same Totals, and no state is held across calls.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Recompute derives all totals from scratch:
//
//	subtotal = sum(price * quantity)
//	shipping = flat fee when subtotal > 0, else 0
//	tax      = taxRate * subtotal
//	total    = max(0, subtotal + tax + shipping - discount)
//
// The discount can never drive the total negative.
func (pc *PricingCalculator) Recompute(items []LineItem, discount *Money, policy PricingPolicy) Totals {
	if discount == nil {
		discount = ZeroMoney()
	}

	subtotal := ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	shipping := ZeroMoney()
	if subtotal.IsPositive() {
		shipping = policy.ShippingFee()
	}

	tax := subtotal.MultiplyByRat(policy.taxRate)

	total := subtotal.Add(tax).Add(shipping).Subtract(discount)
	if total.IsNegative() {
		total = ZeroMoney()
	}

	return Totals{
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCharges: shipping,
		Discount:        discount.Copy(),
		Total:           total,
	}
}
