package get_cart

import (
	"context"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/store"
)

// ItemView is the display shape of one cart line item.
type ItemView struct {
	ProductID string
	Name      string
	Photo     string
	Price     float64
	Stock     int64
	Quantity  int64
}

// CartView is the display shape of a cart summary.
type CartView struct {
	Items           []ItemView
	Subtotal        float64
	Tax             float64
	ShippingCharges float64
	Discount        float64
	Total           float64
	ShippingInfo    *domain.ShippingInfo
}

// Query handles the cart summary query.
type Query struct {
	stores *store.Manager
}

// NewQuery creates a new cart summary query.
func NewQuery(stores *store.Manager) *Query {
	return &Query{stores: stores}
}

// Execute returns the session's current cart snapshot as a view.
func (q *Query) Execute(ctx context.Context, sessionID string) (*CartView, error) {
	cartStore, err := q.stores.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cartStore.Snapshot()
	totals := snapshot.Totals()

	items := snapshot.Items()
	view := &CartView{
		Items:           make([]ItemView, 0, len(items)),
		Subtotal:        totals.Subtotal.Float64(),
		Tax:             totals.Tax.Float64(),
		ShippingCharges: totals.ShippingCharges.Float64(),
		Discount:        totals.Discount.Float64(),
		Total:           totals.Total.Float64(),
		ShippingInfo:    snapshot.ShippingInfo(),
	}

	for _, item := range items {
		view.Items = append(view.Items, ItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Photo:     item.Photo(),
			Price:     item.Price().Float64(),
			Stock:     item.Stock(),
			Quantity:  item.Quantity(),
		})
	}

	return view, nil
}
