package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// CheckoutStartedEvent is emitted when a cart passes the checkout gate
// and a pending order is created.
type CheckoutStartedEvent struct {
	OrderID   string
	SessionID string
	Amount    *Money
	StartedAt time.Time
}

func (e *CheckoutStartedEvent) EventType() string {
	return "checkout.started"
}

func (e *CheckoutStartedEvent) AggregateID() string {
	return e.OrderID
}

// OrderPlacedEvent is emitted when a pending order is confirmed placed.
type OrderPlacedEvent struct {
	OrderID   string
	SessionID string
	Amount    *Money
	PlacedAt  time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}

// PaymentFailedEvent is emitted when payment initiation fails for an order.
type PaymentFailedEvent struct {
	OrderID   string
	SessionID string
	FailedAt  time.Time
}

func (e *PaymentFailedEvent) EventType() string {
	return "payment.failed"
}

func (e *PaymentFailedEvent) AggregateID() string {
	return e.OrderID
}
