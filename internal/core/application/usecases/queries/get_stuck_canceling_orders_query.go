package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetStuckCancelingOrdersQueryIsNotConstructed = errors.New(
		"GetStuckCancelingOrdersQuery must be created via NewGetStuckCancelingOrdersQuery constructor",
	)
)

// GetStuckCancelingOrdersQuery retrieves orders that entered the canceling
// state and are still waiting for the payment compensation to finish.
// Used by the monitoring job to surface sagas that did not complete.
type GetStuckCancelingOrdersQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewGetStuckCancelingOrdersQuery creates a query for orders stuck in the
// canceling state.
func NewGetStuckCancelingOrdersQuery() GetStuckCancelingOrdersQuery {
	return GetStuckCancelingOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStuckCancelingOrdersQueryIsNotConstructed if validation fails.
func (q GetStuckCancelingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStuckCancelingOrdersQueryIsNotConstructed)
}

// GetStuckCancelingOrdersQueryResponse identifies one order awaiting
// compensation, with the failure reasons accumulated so far.
type GetStuckCancelingOrdersQueryResponse struct {
	ID              kernel.UUID
	TrackingID      kernel.UUID
	FailureMessages []string
}
