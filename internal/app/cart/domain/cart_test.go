package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, id string, priceNum, stock, qty int64) LineItem {
	t.Helper()
	item, err := NewLineItem(id, "item "+id, "", mustMoney(t, priceNum, 1), stock, qty)
	require.NoError(t, err)
	return item
}

func TestNewCart(t *testing.T) {
	cart := NewCart()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.Discount().IsZero())
	assert.Nil(t, cart.ShippingInfo())
	assert.True(t, cart.Totals().Total.IsZero())
}

func TestCart_WithItem(t *testing.T) {
	t.Run("appends new products in insertion order", func(t *testing.T) {
		cart := NewCart().
			WithItem(testItem(t, "p-1", 10, 5, 1)).
			WithItem(testItem(t, "p-2", 20, 5, 1)).
			WithItem(testItem(t, "p-3", 30, 5, 1))

		items := cart.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "p-1", items[0].ProductID())
		assert.Equal(t, "p-2", items[1].ProductID())
		assert.Equal(t, "p-3", items[2].ProductID())
	})

	t.Run("same product id replaces in place", func(t *testing.T) {
		cart := NewCart().
			WithItem(testItem(t, "p-1", 10, 5, 1)).
			WithItem(testItem(t, "p-2", 20, 5, 1)).
			WithItem(testItem(t, "p-1", 10, 5, 3))

		items := cart.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "p-1", items[0].ProductID())
		assert.Equal(t, int64(3), items[0].Quantity())
	})
}

func TestCart_WithIncrementDecrement(t *testing.T) {
	cart := NewCart().WithItem(testItem(t, "p-1", 10, 2, 1))

	t.Run("increment raises quantity", func(t *testing.T) {
		next := cart.WithIncrement("p-1")
		item, ok := next.Item("p-1")
		require.True(t, ok)
		assert.Equal(t, int64(2), item.Quantity())
	})

	t.Run("increment at stock is a no-op", func(t *testing.T) {
		next := cart.WithIncrement("p-1").WithIncrement("p-1")
		item, _ := next.Item("p-1")
		assert.Equal(t, int64(2), item.Quantity())
	})

	t.Run("decrement at one is a no-op", func(t *testing.T) {
		next := cart.WithDecrement("p-1")
		item, _ := next.Item("p-1")
		assert.Equal(t, int64(1), item.Quantity())
	})

	t.Run("unknown product id is a no-op", func(t *testing.T) {
		next := cart.WithIncrement("missing")
		assert.Equal(t, 1, next.Len())
	})
}

func TestCart_WithoutItem(t *testing.T) {
	cart := NewCart().
		WithItem(testItem(t, "p-1", 10, 5, 1)).
		WithItem(testItem(t, "p-2", 20, 5, 1))

	t.Run("removes matching entry", func(t *testing.T) {
		next := cart.WithoutItem("p-1")
		assert.Equal(t, 1, next.Len())
		_, ok := next.Item("p-1")
		assert.False(t, ok)
	})

	t.Run("removing absent id is a no-op", func(t *testing.T) {
		next := cart.WithoutItem("missing")
		assert.Equal(t, 2, next.Len())
	})

	t.Run("removal preserves order of the rest", func(t *testing.T) {
		next := cart.
			WithItem(testItem(t, "p-3", 30, 5, 1)).
			WithoutItem("p-2")
		items := next.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "p-1", items[0].ProductID())
		assert.Equal(t, "p-3", items[1].ProductID())
	})
}

func TestCart_Immutability(t *testing.T) {
	original := NewCart().WithItem(testItem(t, "p-1", 10, 5, 1))

	_ = original.WithItem(testItem(t, "p-2", 20, 5, 1))
	_ = original.WithIncrement("p-1")
	_ = original.WithoutItem("p-1")
	_ = original.WithDiscount(mustMoney(t, 5, 1))

	assert.Equal(t, 1, original.Len())
	item, _ := original.Item("p-1")
	assert.Equal(t, int64(1), item.Quantity())
	assert.True(t, original.Discount().IsZero())
}

func TestCart_ShippingInfo(t *testing.T) {
	info := ShippingInfo{
		Address: "12 Baker Street",
		City:    "Pune",
		State:   "MH",
		Country: "IN",
		PinCode: "411001",
	}

	cart := NewCart().WithShippingInfo(info)
	stored := cart.ShippingInfo()
	require.NotNil(t, stored)
	assert.Equal(t, info, *stored)
}

func TestCart_Cleared(t *testing.T) {
	cart := NewCart().
		WithItem(testItem(t, "p-1", 10, 5, 1)).
		WithDiscount(mustMoney(t, 5, 1)).
		WithShippingInfo(ShippingInfo{Address: "somewhere"})

	cleared := cart.Cleared()
	assert.True(t, cleared.IsEmpty())
	assert.True(t, cleared.Discount().IsZero())
	assert.Nil(t, cleared.ShippingInfo())
}

func TestReconstructCart(t *testing.T) {
	items := []LineItem{testItem(t, "p-1", 10, 5, 2)}
	cart := ReconstructCart(items, mustMoney(t, 5, 1), nil)

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 5.0, cart.Discount().Float64())
	// Persisted totals are never trusted; they start zeroed.
	assert.True(t, cart.Totals().Total.IsZero())
}
