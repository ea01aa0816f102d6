package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"
)

// paymentResponseHandler is the application-side contract the consumer
// dispatches to.
type paymentResponseHandler interface {
	Handle(ctx context.Context, cmd commands.PaymentResponseCommand) error
}

// PaymentResponseConsumer reads payment service replies and advances the
// order saga. Offsets are committed after the command handler succeeds, or
// when a replayed message hits a domain state guard, so each effective
// transition is applied exactly once.
type PaymentResponseConsumer struct {
	reader  messageReader
	handler paymentResponseHandler
	logger  *slog.Logger
}

// NewPaymentResponseConsumer creates a consumer dispatching to the given handler.
func NewPaymentResponseConsumer(
	reader messageReader,
	handler paymentResponseHandler,
	logger *slog.Logger,
) *PaymentResponseConsumer {
	return &PaymentResponseConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger,
	}
}

// Run consumes messages until the context is cancelled.
func (c *PaymentResponseConsumer) Run(ctx context.Context) error {
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
				c.logger.Error("failed to commit payment response offset", "error", err)
			}
		}
	}
}

// process handles one raw message. Returns false only on transient handler
// failures, leaving the offset uncommitted for redelivery; malformed
// messages are poison and get committed past.
func (c *PaymentResponseConsumer) process(ctx context.Context, value []byte) bool {
	var message PaymentResponseMessage
	if err := json.Unmarshal(value, &message); err != nil {
		c.logger.Error("failed to decode payment response", "error", err)
		return true
	}

	cmd, err := ToPaymentResponseCommand(message)
	if err != nil {
		c.logger.Error("failed to map payment response",
			"messageId", message.ID,
			"orderId", message.OrderID,
			"error", err)
		return true
	}

	if err = c.handler.Handle(ctx, cmd); err != nil {
		// A replayed message finds the order already past this transition.
		if errors.Is(err, errs.ErrDomainRuleViolated) {
			c.logger.Warn("payment response ignored, order already transitioned",
				"messageId", message.ID,
				"orderId", message.OrderID,
				"paymentStatus", message.PaymentStatus,
				"reason", err)
			return true
		}
		c.logger.Error("failed to handle payment response",
			"messageId", message.ID,
			"orderId", message.OrderID,
			"error", err)
		return false
	}

	c.logger.Info("payment response processed",
		"messageId", message.ID,
		"orderId", message.OrderID,
		"paymentStatus", message.PaymentStatus)
	return true
}
