package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrApprovalResponseCommandIsNotConstructed = errors.New(
	"ApprovalResponseCommand must be created via NewApprovalResponseCommand constructor",
)

// ApprovalStatus is the domain vocabulary for restaurant approval outcomes.
type ApprovalStatus int

const (
	// ApprovalStatusUnknown catches uninitialized values.
	ApprovalStatusUnknown ApprovalStatus = iota

	// OrderApproved means the restaurant accepted the order.
	OrderApproved

	// OrderRejected means the restaurant declined the order.
	OrderRejected
)

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	switch s {
	case OrderApproved:
		return "Approved"
	case OrderRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Validate checks that the status is one of the known approval outcomes.
func (s ApprovalStatus) Validate() error {
	switch s {
	case OrderApproved, OrderRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s),
		)
	}
}

// ApprovalResponseCommand is the domain-shaped form of an inbound
// restaurant approval response message.
type ApprovalResponseCommand struct { //nolint:recvcheck //using for validation
	id              string
	sagaID          string
	restaurantID    kernel.UUID
	orderID         kernel.UUID
	createdAt       time.Time
	approvalStatus  ApprovalStatus
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewApprovalResponseCommand creates a command from an inbound restaurant
// approval response. The order reference and the approval status must be
// valid.
func NewApprovalResponseCommand(
	id string,
	sagaID string,
	restaurantID kernel.UUID,
	orderID kernel.UUID,
	createdAt time.Time,
	approvalStatus ApprovalStatus,
	failureMessages []string,
) (ApprovalResponseCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		approvalStatus.Validate(),
	); err != nil {
		return ApprovalResponseCommand{}, err
	}

	return ApprovalResponseCommand{
		id:              id,
		sagaID:          sagaID,
		restaurantID:    restaurantID,
		orderID:         orderID,
		createdAt:       createdAt,
		approvalStatus:  approvalStatus,
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovalResponseCommand) Validate() error {
	return c.guard.Validate(ErrApprovalResponseCommandIsNotConstructed)
}

// ID returns the message id of the inbound response.
func (c ApprovalResponseCommand) ID() string {
	return c.id
}

// SagaID returns the saga correlation id of the inbound response.
func (c ApprovalResponseCommand) SagaID() string {
	return c.sagaID
}

// RestaurantID returns the responding restaurant's id.
func (c ApprovalResponseCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OrderID returns the order the response refers to.
func (c ApprovalResponseCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CreatedAt returns the restaurant service's timestamp.
func (c ApprovalResponseCommand) CreatedAt() time.Time {
	return c.createdAt
}

// ApprovalStatus returns the reported approval outcome.
func (c ApprovalResponseCommand) ApprovalStatus() ApprovalStatus {
	return c.approvalStatus
}

// FailureMessages returns the failure reasons reported by the restaurant
// service, unmodified.
func (c ApprovalResponseCommand) FailureMessages() []string {
	return c.failureMessages
}
