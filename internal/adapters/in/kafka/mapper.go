package kafka

import (
	"fmt"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ToPaymentResponseCommand maps an inbound payment response message to the
// application command, parsing identifiers and remapping the transport
// status to the domain vocabulary.
func ToPaymentResponseCommand(message PaymentResponseMessage) (commands.PaymentResponseCommand, error) {
	orderID, err := kernel.UUIDFromString(message.OrderID)
	if err != nil {
		return commands.PaymentResponseCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	customerID, err := kernel.UUIDFromString(message.CustomerID)
	if err != nil {
		return commands.PaymentResponseCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	status, err := toPaymentStatus(message.PaymentStatus)
	if err != nil {
		return commands.PaymentResponseCommand{}, err
	}

	return commands.NewPaymentResponseCommand(
		message.ID,
		message.SagaID,
		message.PaymentID,
		customerID,
		orderID,
		kernel.NewMoney(message.Price),
		message.CreatedAt,
		status,
		message.FailureMessages,
	)
}

// ToApprovalResponseCommand maps an inbound restaurant approval response
// message to the application command.
func ToApprovalResponseCommand(
	message RestaurantApprovalResponseMessage,
) (commands.ApprovalResponseCommand, error) {
	orderID, err := kernel.UUIDFromString(message.OrderID)
	if err != nil {
		return commands.ApprovalResponseCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	restaurantID, err := kernel.UUIDFromString(message.RestaurantID)
	if err != nil {
		return commands.ApprovalResponseCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}

	status, err := toApprovalStatus(message.OrderApprovalStatus)
	if err != nil {
		return commands.ApprovalResponseCommand{}, err
	}

	return commands.NewApprovalResponseCommand(
		message.ID,
		message.SagaID,
		restaurantID,
		orderID,
		message.CreatedAt,
		status,
		message.FailureMessages,
	)
}

func toPaymentStatus(status string) (commands.PaymentStatus, error) {
	switch status {
	case PaymentStatusCompleted:
		return commands.PaymentCompleted, nil
	case PaymentStatusCancelled:
		return commands.PaymentCancelled, nil
	case PaymentStatusFailed:
		return commands.PaymentFailed, nil
	default:
		return commands.PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%q is not a known payment status", status),
		)
	}
}

func toApprovalStatus(status string) (commands.ApprovalStatus, error) {
	switch status {
	case OrderApprovalStatusApproved:
		return commands.OrderApproved, nil
	case OrderApprovalStatusRejected:
		return commands.OrderRejected, nil
	default:
		return commands.ApprovalStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"orderApprovalStatus",
			fmt.Errorf("%q is not a known approval status", status),
		)
	}
}
