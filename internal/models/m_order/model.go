package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			OrderID,
			SessionID,
			SubtotalNumerator,
			SubtotalDenominator,
			TaxNumerator,
			TaxDenominator,
			ShippingNumerator,
			ShippingDenominator,
			DiscountNumerator,
			DiscountDenominator,
			TotalNumerator,
			TotalDenominator,
			ShippingAddress,
			ShippingCity,
			ShippingState,
			ShippingCountry,
			ShippingPinCode,
			ClientSecret,
			Status,
			CreatedAt,
			UpdatedAt,
			PlacedAt,
		},
		[]interface{}{
			data.OrderID,
			data.SessionID,
			data.SubtotalNumerator,
			data.SubtotalDenominator,
			data.TaxNumerator,
			data.TaxDenominator,
			data.ShippingNumerator,
			data.ShippingDenominator,
			data.DiscountNumerator,
			data.DiscountDenominator,
			data.TotalNumerator,
			data.TotalDenominator,
			data.ShippingAddress,
			data.ShippingCity,
			data.ShippingState,
			data.ShippingCountry,
			data.ShippingPinCode,
			data.ClientSecret,
			data.Status,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
			data.PlacedAt,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific order fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(orderID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always update the UpdatedAt timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	// Add order ID first
	columns = append(columns, OrderID)
	values = append(values, orderID)

	// Add all update fields
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting an order (hard delete).
func (m *Model) DeleteMut(orderID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{orderID})
}
