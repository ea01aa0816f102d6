// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structures, bypassing the
// aggregate.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves the public state of an order by its tracking
// id: the current status plus any accumulated failure messages.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTrackOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderTrackingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the order with the given tracking
// id.
func NewTrackOrderQuery(orderTrackingID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderTrackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderTrackingID: orderTrackingID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderTrackingID returns the tracking id being queried.
func (q TrackOrderQuery) OrderTrackingID() kernel.UUID {
	return q.orderTrackingID
}

// TrackOrderQueryResponse represents the public tracking state of an
// order. FailureMessages is empty unless the order was cancelled.
type TrackOrderQueryResponse struct {
	OrderTrackingID kernel.UUID
	OrderStatus     order.Status
	FailureMessages []string
}
