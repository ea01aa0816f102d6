package order

import "time"

// Lifecycle events are immutable snapshots produced by the domain service
// at the moment of a state transition. Each carries the order reference and
// a UTC timestamp; they are returned to the caller and handed to the
// messaging layer, never dispatched implicitly.

// CreatedEvent signals that an order passed validation and was initialized
// into Pending. It triggers the outbound payment request.
type CreatedEvent struct {
	order     *Order
	createdAt time.Time
}

// NewCreatedEvent creates a CreatedEvent snapshot.
func NewCreatedEvent(order *Order, createdAt time.Time) CreatedEvent {
	return CreatedEvent{order: order, createdAt: createdAt}
}

// Order returns the order the event refers to.
func (e CreatedEvent) Order() *Order {
	return e.order
}

// CreatedAt returns the UTC timestamp of the transition.
func (e CreatedEvent) CreatedAt() time.Time {
	return e.createdAt
}

// PaidEvent signals that an order moved to Paid. It triggers the outbound
// restaurant approval request.
type PaidEvent struct {
	order     *Order
	createdAt time.Time
}

// NewPaidEvent creates a PaidEvent snapshot.
func NewPaidEvent(order *Order, createdAt time.Time) PaidEvent {
	return PaidEvent{order: order, createdAt: createdAt}
}

// Order returns the order the event refers to.
func (e PaidEvent) Order() *Order {
	return e.order
}

// CreatedAt returns the UTC timestamp of the transition.
func (e PaidEvent) CreatedAt() time.Time {
	return e.createdAt
}

// CancelledEvent signals that a paid order entered Canceling. It triggers
// the compensating payment request that reverses the charge.
type CancelledEvent struct {
	order     *Order
	createdAt time.Time
}

// NewCancelledEvent creates a CancelledEvent snapshot.
func NewCancelledEvent(order *Order, createdAt time.Time) CancelledEvent {
	return CancelledEvent{order: order, createdAt: createdAt}
}

// Order returns the order the event refers to.
func (e CancelledEvent) Order() *Order {
	return e.order
}

// CreatedAt returns the UTC timestamp of the transition.
func (e CancelledEvent) CreatedAt() time.Time {
	return e.createdAt
}
