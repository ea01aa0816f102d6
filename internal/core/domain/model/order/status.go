package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the saga workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Approved
//	   │          │
//	   │          └──> Canceling ──┐
//	   └───────────────────────────┴──> Canceled
//
// Pending is entered exactly once, at initialization. Approved and
// Canceled are terminal: no transition leaves them. Status is a value
// object that validates state transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values; an order
	// carries it only between construction and initialization.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is initialized.
	// Orders in this status await payment confirmation.
	Pending

	// Paid indicates the payment service confirmed the charge.
	// Orders in this status await restaurant approval.
	Paid

	// Approved indicates the restaurant accepted the order.
	// This is a terminal state with no further transitions allowed.
	Approved

	// Canceling indicates a compensation is in flight: the restaurant
	// rejected a paid order and the charge is being reversed.
	Canceling

	// Canceled indicates the order was terminally cancelled, either
	// directly from Pending or after compensation from Canceling.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Approved:  "Approved",
		Canceling: "Canceling",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Approved:  "Approved",
		Canceling: "Canceling",
		Canceled:  "Canceled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Approved, Canceling, Canceled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, messages) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Returns (0, error) for any other current status, including a redelivered
// payment confirmation on an already Paid order.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewDomainRuleError("Order is not in the correct state for payment!")
	}
	return Paid, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Paid -> Approved
//
// Approved is a terminal state with no further transitions possible.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, errs.NewDomainRuleError("Order is not in the correct state for approval!")
	}
	return Approved, nil
}

// InitCancel transitions the status to Canceling, marking the start of a
// payment compensation.
//
// Valid transitions:
//   - Paid -> Canceling
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return 0, errs.NewDomainRuleError("Order is not in the correct state for cancellation!")
	}
	return Canceling, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending   -> Canceled (payment never completed)
//   - Canceling -> Canceled (compensation finished)
//
// Canceled is a terminal state with no further transitions possible.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Canceling {
		return 0, errs.NewDomainRuleError("Order is not in the correct state for cancellation!")
	}
	return Canceled, nil
}
