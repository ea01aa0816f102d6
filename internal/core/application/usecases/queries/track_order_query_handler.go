package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves order tracking state from the database.
// Reads directly over the order table; the aggregate is not loaded because
// tracking is a pure projection of status and failure messages.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking id
//	}
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup. Returns an errs.ObjectNotFoundError
// when no order carries the given tracking id.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.OrderTrackingID().Bytes()).Row()

	var (
		trackingID      uuid.UUID
		status          int
		failureMessages pq.StringArray
	)

	if err := row.Scan(&trackingID, &status, &failureMessages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"orderTrackingId", query.OrderTrackingID().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	responseTrackingID, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	// Orders without failures store a NULL array; callers get an empty
	// slice, never nil, so the HTTP layer serializes it as [].
	if failureMessages == nil {
		failureMessages = pq.StringArray{}
	}

	return TrackOrderQueryResponse{
		OrderTrackingID: responseTrackingID,
		OrderStatus:     order.Status(status),
		FailureMessages: failureMessages,
	}, nil
}
