package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing and retrieving orders by internal id or by
// the public tracking id.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be initialized and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	// Used by saga response handlers performing a read-modify-write.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order aggregate by its public tracking id.
	GetByTrackingID(ctx context.Context, trackingID kernel.UUID) (*order.Order, error)
}
