package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetStuckCancelingOrdersQueryHandler retrieves orders waiting for payment
// compensation from the database. Provides visibility into sagas whose
// cancellation never finished.
//
// Example:
//
//	handler := NewGetStuckCancelingOrdersQueryHandler(db)
//	query := NewGetStuckCancelingOrdersQuery()
//
//	stuckOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get stuck orders: %v", err)
//	    return err
//	}
//
//	if len(stuckOrders) > 0 {
//	    fmt.Printf("%d orders awaiting compensation\n", len(stuckOrders))
//	}
type GetStuckCancelingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStuckCancelingOrdersQueryHandler creates a handler for stuck order queries.
// Requires a GORM database connection for query execution.
func NewGetStuckCancelingOrdersQueryHandler(db *gorm.DB) GetStuckCancelingOrdersQueryHandler {
	return GetStuckCancelingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in the canceling state.
// Results are sorted by order ID for consistent output.
func (h GetStuckCancelingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStuckCancelingOrdersQuery,
) ([]GetStuckCancelingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stuckOrders := make([]GetStuckCancelingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			failure_messages
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.Canceling).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetStuckCancelingOrdersQueryResponse
		var id, trackingID uuid.UUID
		var failureMessages pq.StringArray

		err = rows.Scan(
			&id,
			&trackingID,
			&failureMessages,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderTrackingID, idErr := kernel.UUIDFromBytes(trackingID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.TrackingID = orderTrackingID
		orderResp.FailureMessages = failureMessages

		stuckOrders = append(stuckOrders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stuckOrders, nil
}
