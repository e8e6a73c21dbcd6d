//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/repo"
	"github.com/light-bringer/storefront-checkout/tests/testutil"
)

func testTotals(t *testing.T, total int64) domain.Totals {
	t.Helper()
	m := func(num, denom int64) *domain.Money {
		v, err := domain.NewMoney(num, denom)
		require.NoError(t, err)
		return v
	}
	return domain.Totals{
		Subtotal:        m(total, 1),
		Tax:             m(0, 1),
		ShippingCharges: m(0, 1),
		Discount:        m(0, 1),
		Total:           m(total, 1),
	}
}

func testShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		Address: "12 Baker Street",
		City:    "Pune",
		State:   "MH",
		Country: "IN",
		PinCode: "411001",
	}
}

func TestOrderRepo_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := testutil.NewMockClock()
	repository := repo.NewOrderRepo(client, clk)

	order, err := domain.NewOrder("order-1", "session-1", testTotals(t, 42), testShipping(), clk.Now())
	require.NoError(t, err)
	order.AttachClientSecret("sec_abc")

	mutation, err := repository.InsertMut(order)
	require.NoError(t, err)
	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "orders", 1)

	retrieved, err := repository.GetByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", retrieved.SessionID())
	assert.Equal(t, domain.OrderPending, retrieved.Status())
	assert.Equal(t, "sec_abc", retrieved.ClientSecret())
	assert.Equal(t, 42.0, retrieved.Totals().Total.Float64())
	assert.Equal(t, testShipping(), retrieved.ShippingInfo())
	assert.Nil(t, retrieved.PlacedAt())
}

func TestOrderRepo_UpdateMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := testutil.NewMockClock()
	repository := repo.NewOrderRepo(client, clk)

	order, err := domain.NewOrder("order-2", "session-1", testTotals(t, 42), testShipping(), clk.Now())
	require.NoError(t, err)
	mutation, err := repository.InsertMut(order)
	require.NoError(t, err)
	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, "order-2")
	require.NoError(t, err)
	require.NoError(t, retrieved.MarkPlaced(time.Now().UTC().Truncate(time.Microsecond)))

	update, err := repository.UpdateMut(retrieved)
	require.NoError(t, err)
	require.NotNil(t, update)
	_, err = client.Apply(ctx, []*spanner.Mutation{update})
	require.NoError(t, err)

	placed, err := repository.GetByID(ctx, "order-2")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPlaced, placed.Status())
	assert.NotNil(t, placed.PlacedAt())
}

func TestOrderRepo_UpdateMut_NoChanges(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := testutil.NewMockClock()
	repository := repo.NewOrderRepo(client, clk)

	orderID := testutil.CreateTestOrder(t, client, "session-1", "pending", 42)
	retrieved, err := repository.GetByID(context.Background(), orderID)
	require.NoError(t, err)

	// A reconstructed aggregate with no changes yields no mutation.
	mutation, err := repository.UpdateMut(retrieved)
	require.NoError(t, err)
	assert.Nil(t, mutation)
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewOrderRepo(client, testutil.NewMockClock())

	_, err := repository.GetByID(context.Background(), "missing-order")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
