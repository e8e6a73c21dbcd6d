package list_orders

import (
	"context"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/contracts"
)

// Request contains the order list filters.
type Request struct {
	SessionID string
	Status    string
	PageSize  int
	Offset    int
}

// Query handles the list orders query use case.
type Query struct {
	readModel contracts.OrderReadModel
}

// NewQuery creates a new list orders query.
func NewQuery(readModel contracts.OrderReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a filtered, paginated list of orders.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderListResult, error) {
	return q.readModel.ListOrders(ctx, &contracts.OrderListFilter{
		SessionID: req.SessionID,
		Status:    req.Status,
		PageSize:  req.PageSize,
		Offset:    req.Offset,
	})
}
