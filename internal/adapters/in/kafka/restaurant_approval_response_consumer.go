package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"
)

// approvalResponseHandler is the application-side contract the consumer
// dispatches to.
type approvalResponseHandler interface {
	Handle(ctx context.Context, cmd commands.ApprovalResponseCommand) error
}

// RestaurantApprovalResponseConsumer reads restaurant service replies and
// advances the order saga. Commit semantics match PaymentResponseConsumer.
type RestaurantApprovalResponseConsumer struct {
	reader  messageReader
	handler approvalResponseHandler
	logger  *slog.Logger
}

// NewRestaurantApprovalResponseConsumer creates a consumer dispatching to the given handler.
func NewRestaurantApprovalResponseConsumer(
	reader messageReader,
	handler approvalResponseHandler,
	logger *slog.Logger,
) *RestaurantApprovalResponseConsumer {
	return &RestaurantApprovalResponseConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
	}
}

// Run consumes messages until the context is cancelled.
func (c *RestaurantApprovalResponseConsumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if c.process(ctx, message.Value) {
			if err = c.reader.CommitMessages(ctx, message); err != nil {
				c.logger.Error("failed to commit approval response offset", "error", err)
			}
		}
	}
}

func (c *RestaurantApprovalResponseConsumer) process(ctx context.Context, value []byte) bool {
	var message RestaurantApprovalResponseMessage
	if err := json.Unmarshal(value, &message); err != nil {
		c.logger.Error("failed to decode approval response", "error", err)
		return true
	}

	cmd, err := ToApprovalResponseCommand(message)
	if err != nil {
		c.logger.Error("failed to map approval response",
			"messageId", message.ID,
			"orderId", message.OrderID,
			"error", err)
		return true
	}

	if err = c.handler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrDomainRuleViolated) {
			c.logger.Warn("approval response ignored, order already transitioned",
				"messageId", message.ID,
				"orderId", message.OrderID,
				"orderApprovalStatus", message.OrderApprovalStatus,
				"reason", err)
			return true
		}
		c.logger.Error("failed to handle approval response",
			"messageId", message.ID,
			"orderId", message.OrderID,
			"error", err)
		return false
	}

	c.logger.Info("approval response processed",
		"messageId", message.ID,
		"orderId", message.OrderID,
		"orderApprovalStatus", message.OrderApprovalStatus)
	return true
}
