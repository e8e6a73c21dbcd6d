package domain

// Cart is an immutable snapshot of one shopper's cart. Every mutation
// method returns a new Cart value and leaves the receiver untouched,
// so snapshots handed to views stay stable while the container moves on.
//
// Items keep insertion order and are keyed by product id: adding an id
// that is already present replaces that entry in place rather than
// appending a duplicate.
type Cart struct {
	items        []LineItem
	discount     *Money
	shippingInfo *ShippingInfo
	totals       Totals
}

// NewCart creates an empty cart with zeroed totals.
func NewCart() *Cart {
	return &Cart{
		items:    []LineItem{},
		discount: ZeroMoney(),
		totals:   ZeroTotals(),
	}
}

// ReconstructCart reconstitutes a cart from persisted storage. Totals
// are not trusted from storage and must be recomputed by the caller.
func ReconstructCart(items []LineItem, discount *Money, shippingInfo *ShippingInfo) *Cart {
	if discount == nil {
		discount = ZeroMoney()
	}
	return &Cart{
		items:        append([]LineItem{}, items...),
		discount:     discount.Copy(),
		shippingInfo: shippingInfo,
		totals:       ZeroTotals(),
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	return append([]LineItem{}, c.items...)
}

// Item returns the line item for the given product id, if present.
func (c *Cart) Item(productID string) (LineItem, bool) {
	for _, item := range c.items {
		if item.productID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// Len returns the number of line items.
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty returns true when the cart holds no line items.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Discount returns the currently applied coupon discount.
func (c *Cart) Discount() *Money { return c.discount.Copy() }

// ShippingInfo returns the stored shipping address, or nil.
func (c *Cart) ShippingInfo() *ShippingInfo {
	if c.shippingInfo == nil {
		return nil
	}
	info := *c.shippingInfo
	return &info
}

// Totals returns the derived monetary totals for this snapshot.
func (c *Cart) Totals() Totals { return c.totals }

// WithItem returns a cart with the item added, or with the existing
// entry for the same product id replaced in place.
func (c *Cart) WithItem(item LineItem) *Cart {
	next := c.clone()
	for i, existing := range next.items {
		if existing.productID == item.productID {
			next.items[i] = item
			return next
		}
	}
	next.items = append(next.items, item)
	return next
}

// WithIncrement returns a cart with the item's quantity raised by one,
// bounded by its stock. Absent ids and at-stock items are no-ops.
func (c *Cart) WithIncrement(productID string) *Cart {
	next := c.clone()
	for i, item := range next.items {
		if item.productID == productID {
			next.items[i] = item.incremented()
			break
		}
	}
	return next
}

// WithDecrement returns a cart with the item's quantity lowered by one,
// bounded below by 1. Absent ids and quantity-1 items are no-ops.
func (c *Cart) WithDecrement(productID string) *Cart {
	next := c.clone()
	for i, item := range next.items {
		if item.productID == productID {
			next.items[i] = item.decremented()
			break
		}
	}
	return next
}

// WithoutItem returns a cart with the matching entry removed. Removing
// an absent id is a no-op.
func (c *Cart) WithoutItem(productID string) *Cart {
	next := c.clone()
	for i, item := range next.items {
		if item.productID == productID {
			next.items = append(next.items[:i:i], next.items[i+1:]...)
			break
		}
	}
	return next
}

// WithDiscount returns a cart with the coupon discount replaced.
func (c *Cart) WithDiscount(discount *Money) *Cart {
	next := c.clone()
	if discount == nil {
		discount = ZeroMoney()
	}
	next.discount = discount.Copy()
	return next
}

// WithShippingInfo returns a cart with the shipping address stored verbatim.
func (c *Cart) WithShippingInfo(info ShippingInfo) *Cart {
	next := c.clone()
	next.shippingInfo = &info
	return next
}

// WithTotals returns a cart carrying freshly derived totals.
// Only the pricing calculator should produce the Totals value; totals
// are never hand-edited.
func (c *Cart) WithTotals(totals Totals) *Cart {
	next := c.clone()
	next.totals = totals
	return next
}

// Cleared returns an empty cart, dropping items, discount, and shipping
// info. Used after successful order placement.
func (c *Cart) Cleared() *Cart {
	return NewCart()
}

func (c *Cart) clone() *Cart {
	return &Cart{
		items:        append([]LineItem{}, c.items...),
		discount:     c.discount.Copy(),
		shippingInfo: c.shippingInfo,
		totals:       c.totals,
	}
}
