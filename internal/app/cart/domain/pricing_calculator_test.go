package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) PricingPolicy {
	t.Helper()
	policy, err := NewPricingPolicy(10, mustMoney(t, 20, 1))
	require.NoError(t, err)
	return policy
}

func TestNewPricingPolicy(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		policy, err := NewPricingPolicy(10, mustMoney(t, 20, 1))
		require.NoError(t, err)
		assert.Equal(t, 20.0, policy.ShippingFee().Float64())
	})

	t.Run("tax rate out of range rejected", func(t *testing.T) {
		_, err := NewPricingPolicy(101, mustMoney(t, 20, 1))
		assert.ErrorIs(t, err, ErrInvalidTaxRate)

		_, err = NewPricingPolicy(-1, mustMoney(t, 20, 1))
		assert.ErrorIs(t, err, ErrInvalidTaxRate)
	})

	t.Run("negative shipping fee rejected", func(t *testing.T) {
		_, err := NewPricingPolicy(10, mustMoney(t, -20, 1))
		assert.ErrorIs(t, err, ErrInvalidShippingFee)
	})
}

func TestPricingCalculator_Recompute(t *testing.T) {
	calc := NewPricingCalculator()
	policy := testPolicy(t)

	t.Run("single item", func(t *testing.T) {
		// One item at 10 x 2: subtotal 20, tax 2, shipping 20, total 42.
		items := []LineItem{testItem(t, "p-1", 10, 5, 2)}

		totals := calc.Recompute(items, ZeroMoney(), policy)

		assert.Equal(t, 20.0, totals.Subtotal.Float64())
		assert.Equal(t, 2.0, totals.Tax.Float64())
		assert.Equal(t, 20.0, totals.ShippingCharges.Float64())
		assert.Equal(t, 42.0, totals.Total.Float64())
	})

	t.Run("discount subtracts from total", func(t *testing.T) {
		items := []LineItem{testItem(t, "p-1", 10, 5, 2)}

		totals := calc.Recompute(items, mustMoney(t, 15, 1), policy)

		assert.Equal(t, 15.0, totals.Discount.Float64())
		assert.Equal(t, 27.0, totals.Total.Float64())
	})

	t.Run("total floors at zero", func(t *testing.T) {
		items := []LineItem{testItem(t, "p-1", 10, 5, 1)}

		totals := calc.Recompute(items, mustMoney(t, 1000, 1), policy)

		assert.True(t, totals.Total.IsZero())
		assert.False(t, totals.Total.IsNegative())
	})

	t.Run("empty cart has no shipping or tax", func(t *testing.T) {
		totals := calc.Recompute(nil, ZeroMoney(), policy)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.ShippingCharges.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("multiple items sum line totals", func(t *testing.T) {
		items := []LineItem{
			testItem(t, "p-1", 10, 5, 2), // 20
			testItem(t, "p-2", 5, 5, 3),  // 15
		}

		totals := calc.Recompute(items, ZeroMoney(), policy)

		assert.Equal(t, 35.0, totals.Subtotal.Float64())
		assert.Equal(t, 3.5, totals.Tax.Float64())
		assert.Equal(t, 58.5, totals.Total.Float64())
	})

	t.Run("nil discount treated as zero", func(t *testing.T) {
		items := []LineItem{testItem(t, "p-1", 10, 5, 1)}

		totals := calc.Recompute(items, nil, policy)

		assert.True(t, totals.Discount.IsZero())
		assert.Equal(t, 31.0, totals.Total.Float64())
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		item, err := NewLineItem("p-1", "x", "", mustMoney(t, 1999, 100), 10, 3)
		require.NoError(t, err)

		totals := calc.Recompute([]LineItem{item}, ZeroMoney(), policy)

		assert.Equal(t, "59.97", totals.Subtotal.String())
		assert.Equal(t, "6.00", totals.Tax.String()) // 5.997 rounds in display only
		assert.Equal(t, "85.97", totals.Total.String())
	})
}
