package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPaymentResponseCommandIsNotConstructed = errors.New(
	"PaymentResponseCommand must be created via NewPaymentResponseCommand constructor",
)

// PaymentStatus is the domain vocabulary for payment outcomes reported by
// the payment service.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentCompleted means the charge succeeded.
	PaymentCompleted

	// PaymentCancelled means a prior charge was reversed (compensation).
	PaymentCancelled

	// PaymentFailed means the charge was rejected.
	PaymentFailed
)

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentCompleted:
		return "Completed"
	case PaymentCancelled:
		return "Cancelled"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Validate checks that the status is one of the known payment outcomes.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentCompleted, PaymentCancelled, PaymentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
}

// PaymentResponseCommand is the domain-shaped form of an inbound payment
// response message: a straight field copy with the transport enum remapped
// to PaymentStatus and the failure messages passed through unmodified.
type PaymentResponseCommand struct { //nolint:recvcheck //using for validation
	id              string
	sagaID          string
	paymentID       string
	customerID      kernel.UUID
	orderID         kernel.UUID
	price           kernel.Money
	createdAt       time.Time
	paymentStatus   PaymentStatus
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewPaymentResponseCommand creates a command from an inbound payment
// response. The order reference and the payment status must be valid; the
// remaining fields are correlation data carried through as-is.
func NewPaymentResponseCommand(
	id string,
	sagaID string,
	paymentID string,
	customerID kernel.UUID,
	orderID kernel.UUID,
	price kernel.Money,
	createdAt time.Time,
	paymentStatus PaymentStatus,
	failureMessages []string,
) (PaymentResponseCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return PaymentResponseCommand{}, err
	}

	return PaymentResponseCommand{
		id:              id,
		sagaID:          sagaID,
		paymentID:       paymentID,
		customerID:      customerID,
		orderID:         orderID,
		price:           price,
		createdAt:       createdAt,
		paymentStatus:   paymentStatus,
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PaymentResponseCommand) Validate() error {
	return c.guard.Validate(ErrPaymentResponseCommandIsNotConstructed)
}

// ID returns the message id of the inbound response.
func (c PaymentResponseCommand) ID() string {
	return c.id
}

// SagaID returns the saga correlation id of the inbound response.
func (c PaymentResponseCommand) SagaID() string {
	return c.sagaID
}

// PaymentID returns the payment service's id for the charge.
func (c PaymentResponseCommand) PaymentID() string {
	return c.paymentID
}

// CustomerID returns the customer reference carried by the response.
func (c PaymentResponseCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the order the response refers to.
func (c PaymentResponseCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Price returns the charged amount.
func (c PaymentResponseCommand) Price() kernel.Money {
	return c.price
}

// CreatedAt returns the payment service's timestamp.
func (c PaymentResponseCommand) CreatedAt() time.Time {
	return c.createdAt
}

// PaymentStatus returns the reported payment outcome.
func (c PaymentResponseCommand) PaymentStatus() PaymentStatus {
	return c.paymentStatus
}

// FailureMessages returns the failure reasons reported by the payment
// service, unmodified.
func (c PaymentResponseCommand) FailureMessages() []string {
	return c.failureMessages
}
