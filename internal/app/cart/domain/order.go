package domain

import "time"

// Field names for change tracking
const (
	FieldStatus       = "status"
	FieldClientSecret = "client_secret"
	FieldPlacedAt     = "placed_at"
)

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPlaced  OrderStatus = "placed"
	OrderFailed  OrderStatus = "failed"
)

// Order is the aggregate created when a cart passes the checkout gate.
// It freezes the cart's totals and shipping address at checkout time and
// tracks the payment lifecycle from initiation to placement.
type Order struct {
	id           string
	sessionID    string
	totals       Totals
	shippingInfo ShippingInfo
	clientSecret string
	status       OrderStatus
	createdAt    time.Time
	updatedAt    time.Time
	placedAt     *time.Time

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be logged by interactors
	events []DomainEvent
}

// NewOrder creates a pending order from a checkout-ready cart snapshot.
func NewOrder(id, sessionID string, totals Totals, shippingInfo ShippingInfo, now time.Time) (*Order, error) {
	if totals.Total == nil || !totals.Total.IsPositive() {
		return nil, ErrInvalidOrderAmount
	}

	o := &Order{
		id:           id,
		sessionID:    sessionID,
		totals:       totals,
		shippingInfo: shippingInfo,
		status:       OrderPending,
		createdAt:    now,
		updatedAt:    now,
		changes:      NewChangeTracker(),
		events:       make([]DomainEvent, 0),
	}

	o.recordEvent(&CheckoutStartedEvent{
		OrderID:   o.id,
		SessionID: o.sessionID,
		Amount:    o.totals.Total.Copy(),
		StartedAt: o.createdAt,
	})

	return o, nil
}

// ReconstructOrder reconstitutes an Order from the database.
func ReconstructOrder(
	id, sessionID string,
	totals Totals,
	shippingInfo ShippingInfo,
	clientSecret string,
	status OrderStatus,
	createdAt, updatedAt time.Time,
	placedAt *time.Time,
) *Order {
	return &Order{
		id:           id,
		sessionID:    sessionID,
		totals:       totals,
		shippingInfo: shippingInfo,
		clientSecret: clientSecret,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		placedAt:     placedAt,
		changes:      NewChangeTracker(), // Start with clean slate
		events:       make([]DomainEvent, 0),
	}
}

// Getters
func (o *Order) ID() string                  { return o.id }
func (o *Order) SessionID() string           { return o.sessionID }
func (o *Order) Totals() Totals              { return o.totals }
func (o *Order) ShippingInfo() ShippingInfo  { return o.shippingInfo }
func (o *Order) ClientSecret() string        { return o.clientSecret }
func (o *Order) Status() OrderStatus         { return o.status }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Order) PlacedAt() *time.Time        { return o.placedAt }
func (o *Order) Changes() *ChangeTracker     { return o.changes }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

// AttachClientSecret stores the payment token issued by the payment
// provider when the payment intent was created.
func (o *Order) AttachClientSecret(secret string) {
	o.clientSecret = secret
	o.changes.MarkDirty(FieldClientSecret)
}

// MarkPlaced transitions a pending order to placed.
func (o *Order) MarkPlaced(now time.Time) error {
	if o.status == OrderPlaced {
		return ErrOrderAlreadyPlaced
	}
	if o.status != OrderPending {
		return ErrOrderNotPending
	}

	o.status = OrderPlaced
	o.placedAt = &now
	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)
	o.changes.MarkDirty(FieldPlacedAt)

	o.recordEvent(&OrderPlacedEvent{
		OrderID:   o.id,
		SessionID: o.sessionID,
		Amount:    o.totals.Total.Copy(),
		PlacedAt:  now,
	})

	return nil
}

// MarkFailed transitions a pending order to failed. The operation stays
// re-submittable: a later checkout creates a fresh order.
func (o *Order) MarkFailed(now time.Time) error {
	if o.status != OrderPending {
		return ErrOrderNotPending
	}

	o.status = OrderFailed
	o.updatedAt = now
	o.changes.MarkDirty(FieldStatus)

	o.recordEvent(&PaymentFailedEvent{
		OrderID:   o.id,
		SessionID: o.sessionID,
		FailedAt:  now,
	})

	return nil
}

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}
