package domain

// LineItem is one product entry in a cart with its own quantity.
// Quantity is always within [1, stock]; requests that would leave the
// bounds are absorbed as no-ops rather than surfaced as errors, because
// the calling UI only offers legal transitions.
type LineItem struct {
	productID string
	name      string
	photo     string
	price     *Money
	stock     int64
	quantity  int64
}

// NewLineItem creates a line item, clamping quantity into [1, stock].
func NewLineItem(productID, name, photo string, price *Money, stock, quantity int64) (LineItem, error) {
	if productID == "" {
		return LineItem{}, ErrEmptyProductID
	}
	if price == nil || price.IsNegative() {
		return LineItem{}, ErrInvalidItemPrice
	}
	if stock < 1 {
		return LineItem{}, ErrItemOutOfStock
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > stock {
		quantity = stock
	}

	return LineItem{
		productID: productID,
		name:      name,
		photo:     photo,
		price:     price.Copy(),
		stock:     stock,
		quantity:  quantity,
	}, nil
}

// Getters
func (li LineItem) ProductID() string { return li.productID }
func (li LineItem) Name() string      { return li.name }
func (li LineItem) Photo() string     { return li.photo }
func (li LineItem) Price() *Money     { return li.price.Copy() }
func (li LineItem) Stock() int64      { return li.stock }
func (li LineItem) Quantity() int64   { return li.quantity }

// LineTotal returns price * quantity.
func (li LineItem) LineTotal() *Money {
	return li.price.MultiplyByInt(li.quantity)
}

// incremented returns a copy with quantity+1, or the receiver unchanged
// when quantity already equals stock.
func (li LineItem) incremented() LineItem {
	if li.quantity >= li.stock {
		return li
	}
	li.quantity++
	return li
}

// decremented returns a copy with quantity-1, or the receiver unchanged
// when quantity is already 1.
func (li LineItem) decremented() LineItem {
	if li.quantity <= 1 {
		return li
	}
	li.quantity--
	return li
}
