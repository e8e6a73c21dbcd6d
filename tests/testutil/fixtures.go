package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-checkout/internal/models/m_order"
)

// CreateTestOrder inserts an order row directly, bypassing the domain
// layer, and returns its id. Amounts are whole currency units.
func CreateTestOrder(t *testing.T, client *spanner.Client, sessionID, status string, total int64) string {
	t.Helper()

	ctx := context.Background()
	orderID := uuid.New().String()

	model := m_order.NewModel()
	data := &m_order.Data{
		OrderID:             orderID,
		SessionID:           sessionID,
		SubtotalNumerator:   total,
		SubtotalDenominator: 1,
		TaxNumerator:        0,
		TaxDenominator:      1,
		ShippingNumerator:   0,
		ShippingDenominator: 1,
		DiscountNumerator:   0,
		DiscountDenominator: 1,
		TotalNumerator:      total,
		TotalDenominator:    1,
		ShippingAddress:     "12 Baker Street",
		ShippingCity:        "Pune",
		ShippingState:       "MH",
		ShippingCountry:     "IN",
		ShippingPinCode:     "411001",
		ClientSecret:        "sec_test",
		Status:              status,
	}
	if status == "placed" {
		data.PlacedAt = spanner.NullTime{Time: time.Now(), Valid: true}
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to insert test order")

	return orderID
}
