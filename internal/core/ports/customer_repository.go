package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read-only lookup contract for customer
// projections. The ordering context only verifies existence.
type CustomerRepository interface {
	// Get retrieves a customer projection by id.
	// Returns an errs.ObjectNotFoundError when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
