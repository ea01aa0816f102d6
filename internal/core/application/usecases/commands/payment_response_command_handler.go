package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// PaymentResponseCommandHandler applies a payment outcome to its order.
// A completed payment moves the order to Paid and publishes the restaurant
// approval request; a cancelled or failed payment terminally cancels the
// order and records the failure reasons.
//
// The handler performs a read-modify-write over the order inside a unit of
// work; redelivered or out-of-order responses surface as domain rule errors
// from the state machine and are absorbed by the inbound messaging adapter.
type PaymentResponseCommandHandler struct {
	uowFactory        OrderUoWFactory
	lifecycle         services.OrderLifecycle
	approvalPublisher ports.RestaurantApprovalRequestPublisher
	logger            *slog.Logger
}

// NewPaymentResponseCommandHandler creates a handler for inbound payment
// responses.
func NewPaymentResponseCommandHandler(
	uowFactory OrderUoWFactory,
	lifecycle services.OrderLifecycle,
	approvalPublisher ports.RestaurantApprovalRequestPublisher,
	logger *slog.Logger,
) PaymentResponseCommandHandler {
	return PaymentResponseCommandHandler{
		uowFactory:        uowFactory,
		lifecycle:         lifecycle,
		approvalPublisher: approvalPublisher,
		logger:            logger.With("component", "payment_response_command_handler"),
	}
}

// Handle processes an inbound payment response.
func (h *PaymentResponseCommandHandler) Handle(ctx context.Context, cmd PaymentResponseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.PaymentStatus() {
	case PaymentCompleted:
		return h.completePayment(ctx, cmd)
	default:
		return h.cancelOrder(ctx, cmd)
	}
}

// completePayment moves the order to Paid and requests restaurant approval.
func (h *PaymentResponseCommandHandler) completePayment(ctx context.Context, cmd PaymentResponseCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	event, err := h.lifecycle.PayOrder(o)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order paid", "order_id", o.ID(), "saga_id", cmd.SagaID())

	return h.approvalPublisher.PublishPaid(ctx, event)
}

// cancelOrder terminally cancels the order for a cancelled or failed
// payment, recording the reported failure messages. No follow-up message
// is published: either the charge never happened or its compensation just
// completed.
func (h *PaymentResponseCommandHandler) cancelOrder(ctx context.Context, cmd PaymentResponseCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.CancelOrder(o, cmd.FailureMessages()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled", "order_id", o.ID(), "saga_id", cmd.SagaID())
	return nil
}
