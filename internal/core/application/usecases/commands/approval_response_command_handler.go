package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ApprovalResponseCommandHandler applies a restaurant approval outcome to
// its order. An approval moves the order to its terminal Approved state; a
// rejection starts the payment compensation by moving the order to
// Canceling and publishing a compensating payment request.
type ApprovalResponseCommandHandler struct {
	uowFactory       OrderUoWFactory
	lifecycle        services.OrderLifecycle
	paymentPublisher ports.PaymentRequestPublisher
	logger           *slog.Logger
}

// NewApprovalResponseCommandHandler creates a handler for inbound
// restaurant approval responses.
func NewApprovalResponseCommandHandler(
	uowFactory OrderUoWFactory,
	lifecycle services.OrderLifecycle,
	paymentPublisher ports.PaymentRequestPublisher,
	logger *slog.Logger,
) ApprovalResponseCommandHandler {
	return ApprovalResponseCommandHandler{
		uowFactory:       uowFactory,
		lifecycle:        lifecycle,
		paymentPublisher: paymentPublisher,
		logger:           logger.With("component", "approval_response_command_handler"),
	}
}

// Handle processes an inbound restaurant approval response.
func (h *ApprovalResponseCommandHandler) Handle(ctx context.Context, cmd ApprovalResponseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.ApprovalStatus() {
	case OrderApproved:
		return h.approveOrder(ctx, cmd)
	default:
		return h.initCancelOrder(ctx, cmd)
	}
}

// approveOrder moves the order to its terminal Approved state.
func (h *ApprovalResponseCommandHandler) approveOrder(ctx context.Context, cmd ApprovalResponseCommand) error {
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

	if err = h.lifecycle.ApproveOrder(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order approved", "order_id", o.ID(), "saga_id", cmd.SagaID())
	return nil
}

// initCancelOrder starts the payment compensation for a rejected order:
// the order moves to Canceling and a compensating payment request is
// published. The failure messages travel with the compensation and are
// recorded when the terminal cancellation lands.
func (h *ApprovalResponseCommandHandler) initCancelOrder(ctx context.Context, cmd ApprovalResponseCommand) error {
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

	event, err := h.lifecycle.CancelOrderPayment(o, cmd.FailureMessages())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order payment cancelling",
		"order_id", o.ID(), "saga_id", cmd.SagaID(), "failure_messages", cmd.FailureMessages())

	return h.paymentPublisher.PublishCancelled(ctx, event)
}
