package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

func testPolicy(t *testing.T) domain.PricingPolicy {
	t.Helper()
	fee, err := domain.NewMoney(20, 1)
	require.NoError(t, err)
	policy, err := domain.NewPricingPolicy(10, fee)
	require.NoError(t, err)
	return policy
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(domain.NewPricingCalculator(), testPolicy(t))
}

func testItem(t *testing.T, id string, price, stock, qty int64) domain.LineItem {
	t.Helper()
	p, err := domain.NewMoney(price, 1)
	require.NoError(t, err)
	item, err := domain.NewLineItem(id, "item "+id, "", p, stock, qty)
	require.NoError(t, err)
	return item
}

func TestStore_AddOrUpdate(t *testing.T) {
	s := testStore(t)

	t.Run("totals follow every mutation", func(t *testing.T) {
		snap := s.AddOrUpdate(testItem(t, "p-1", 10, 5, 2))

		// subtotal 20, tax 2, shipping 20
		assert.Equal(t, 20.0, snap.Totals().Subtotal.Float64())
		assert.Equal(t, 42.0, snap.Totals().Total.Float64())
	})

	t.Run("re-adding replaces the entry", func(t *testing.T) {
		snap := s.AddOrUpdate(testItem(t, "p-1", 10, 5, 3))

		assert.Equal(t, 1, snap.Len())
		assert.Equal(t, 30.0, snap.Totals().Subtotal.Float64())
	})
}

func TestStore_SnapshotStability(t *testing.T) {
	s := testStore(t)
	s.AddOrUpdate(testItem(t, "p-1", 10, 5, 1))

	before := s.Snapshot()
	s.AddOrUpdate(testItem(t, "p-2", 30, 5, 1))

	// The earlier snapshot is untouched by later mutations.
	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 10.0, before.Totals().Subtotal.Float64())
	assert.Equal(t, 2, s.Snapshot().Len())
}

func TestStore_QuantityMutations(t *testing.T) {
	s := testStore(t)
	s.AddOrUpdate(testItem(t, "p-1", 10, 2, 1))

	snap := s.Increment("p-1")
	item, _ := snap.Item("p-1")
	assert.Equal(t, int64(2), item.Quantity())

	// Stock bound reached, no change and totals stay consistent.
	snap = s.Increment("p-1")
	item, _ = snap.Item("p-1")
	assert.Equal(t, int64(2), item.Quantity())
	assert.Equal(t, 20.0, snap.Totals().Subtotal.Float64())

	snap = s.Decrement("p-1")
	item, _ = snap.Item("p-1")
	assert.Equal(t, int64(1), item.Quantity())
}

func TestStore_RemoveDropsShippingCharge(t *testing.T) {
	s := testStore(t)
	s.AddOrUpdate(testItem(t, "p-1", 10, 5, 1))

	snap := s.Remove("p-1")

	assert.True(t, snap.IsEmpty())
	// Empty cart carries no shipping fee.
	assert.True(t, snap.Totals().ShippingCharges.IsZero())
	assert.True(t, snap.Totals().Total.IsZero())
}

func TestStore_SetDiscount(t *testing.T) {
	s := testStore(t)
	s.AddOrUpdate(testItem(t, "p-1", 10, 5, 2))

	discount, err := domain.NewMoney(15, 1)
	require.NoError(t, err)
	snap := s.SetDiscount(discount)

	assert.Equal(t, 27.0, snap.Totals().Total.Float64())
}

func TestStore_Subscribe(t *testing.T) {
	s := testStore(t)

	var snapshots []*domain.Cart
	s.Subscribe(func(c *domain.Cart) {
		snapshots = append(snapshots, c)
	})

	s.AddOrUpdate(testItem(t, "p-1", 10, 5, 1))
	s.Increment("p-1")
	s.Clear()

	require.Len(t, snapshots, 3)
	assert.Equal(t, 1, snapshots[0].Len())
	item, _ := snapshots[1].Item("p-1")
	assert.Equal(t, int64(2), item.Quantity())
	assert.True(t, snapshots[2].IsEmpty())
}

func TestNewFromSnapshot(t *testing.T) {
	discount, err := domain.NewMoney(5, 1)
	require.NoError(t, err)
	cart := domain.ReconstructCart(
		[]domain.LineItem{testItem(t, "p-1", 10, 5, 2)},
		discount,
		nil,
	)

	s := NewFromSnapshot(domain.NewPricingCalculator(), testPolicy(t), cart)

	// Rehydrated totals are recomputed, not read from storage.
	snap := s.Snapshot()
	assert.Equal(t, 20.0, snap.Totals().Subtotal.Float64())
	assert.Equal(t, 37.0, snap.Totals().Total.Float64())
}
