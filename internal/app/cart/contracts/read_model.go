package contracts

import (
	"context"
	"time"
)

// OrderDTO is a data transfer object for order queries.
type OrderDTO struct {
	OrderID         string
	SessionID       string
	Subtotal        float64 // Approximate representations for display
	Tax             float64
	ShippingCharges float64
	Discount        float64
	Total           float64
	Status          string
	CreatedAt       time.Time
	PlacedAt        *time.Time
}

// OrderListFilter defines filtering options for listing orders.
type OrderListFilter struct {
	SessionID string
	Status    string
	PageSize  int
	Offset    int
}

// OrderListResult contains paginated order list results.
type OrderListResult struct {
	Orders     []*OrderDTO
	TotalCount int64
}

// OrderReadModel defines the interface for order queries.
// Read models can bypass the domain layer for performance.
type OrderReadModel interface {
	// ListOrders retrieves a paginated list of orders with filtering
	ListOrders(ctx context.Context, filter *OrderListFilter) (*OrderListResult, error)
}
