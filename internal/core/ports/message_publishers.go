package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// MessageProducer is the transport-level publish contract implemented by
// the messaging infrastructure. Publishing is fire-and-forget: the call
// enqueues the message and returns, and onResult is invoked asynchronously
// with the delivery outcome. Callback failures must be logged by the
// caller; the core never retries, since retry policy belongs to the
// infrastructure wrapping the port.
type MessageProducer interface {
	Publish(ctx context.Context, topic, key string, message any, onResult func(error)) error
}

// PaymentRequestPublisher publishes outbound payment saga steps derived
// from order lifecycle events.
type PaymentRequestPublisher interface {
	// PublishCreated requests a charge for a freshly created order.
	PublishCreated(ctx context.Context, event order.CreatedEvent) error

	// PublishCancelled requests the compensation of a prior charge for an
	// order entering Canceling.
	PublishCancelled(ctx context.Context, event order.CancelledEvent) error
}

// RestaurantApprovalRequestPublisher publishes outbound restaurant saga
// steps derived from order lifecycle events.
type RestaurantApprovalRequestPublisher interface {
	// PublishPaid requests restaurant approval for a paid order.
	PublishPaid(ctx context.Context, event order.PaidEvent) error
}
