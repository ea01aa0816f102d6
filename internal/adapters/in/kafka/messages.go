// Package kafka implements the inbound messaging adapters over Apache Kafka.
// Consumers read saga response messages, map them to application commands and
// dispatch them to the command handlers. Replayed messages that hit a domain
// state guard are absorbed and committed, making consumption idempotent.
package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses carried on inbound payment responses.
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusFailed    = "FAILED"
)

// Approval statuses carried on inbound restaurant approval responses.
const (
	OrderApprovalStatusApproved = "APPROVED"
	OrderApprovalStatusRejected = "REJECTED"
)

// PaymentResponseMessage is the wire format of a payment service reply.
type PaymentResponseMessage struct {
	ID              string          `json:"id"`
	SagaID          string          `json:"sagaId"`
	OrderID         string          `json:"orderId"`
	PaymentID       string          `json:"paymentId"`
	CustomerID      string          `json:"customerId"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"createdAt"`
	PaymentStatus   string          `json:"paymentStatus"`
	FailureMessages []string        `json:"failureMessages"`
}

// RestaurantApprovalResponseMessage is the wire format of a restaurant
// service reply.
type RestaurantApprovalResponseMessage struct {
	ID                  string    `json:"id"`
	SagaID              string    `json:"sagaId"`
	OrderID             string    `json:"orderId"`
	RestaurantID        string    `json:"restaurantId"`
	CreatedAt           time.Time `json:"createdAt"`
	OrderApprovalStatus string    `json:"orderApprovalStatus"`
	FailureMessages     []string  `json:"failureMessages"`
}
