package kafka

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// PaymentRequestKafkaPublisher publishes payment saga steps to the payment
// request topic. Implements ports.PaymentRequestPublisher.
type PaymentRequestKafkaPublisher struct {
	producer ports.MessageProducer
	topic    string
	logger   *slog.Logger
}

// NewPaymentRequestKafkaPublisher creates a publisher writing to the given topic.
func NewPaymentRequestKafkaPublisher(
	producer ports.MessageProducer,
	topic string,
	logger *slog.Logger,
) *PaymentRequestKafkaPublisher {
	return &PaymentRequestKafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishCreated requests a charge for a freshly created order.
func (p *PaymentRequestKafkaPublisher) PublishCreated(ctx context.Context, event order.CreatedEvent) error {
	message := NewPaymentRequestMessage(event)
	return p.producer.Publish(ctx, p.topic, message.OrderID, message,
		p.onResult(message.ID, message.OrderID, message.PaymentOrderStatus))
}

// PublishCancelled requests the compensation of a prior charge.
func (p *PaymentRequestKafkaPublisher) PublishCancelled(ctx context.Context, event order.CancelledEvent) error {
	message := NewPaymentCancelMessage(event)
	return p.producer.Publish(ctx, p.topic, message.OrderID, message,
		p.onResult(message.ID, message.OrderID, message.PaymentOrderStatus))
}

func (p *PaymentRequestKafkaPublisher) onResult(messageID, orderID, status string) func(error) {
	return func(err error) {
		if err != nil {
			p.logger.Error("payment request delivery failed",
				"messageId", messageID,
				"orderId", orderID,
				"status", status,
				"topic", p.topic,
				"error", err)
			return
		}
		p.logger.Info("payment request delivered",
			"messageId", messageID,
			"orderId", orderID,
			"status", status,
			"topic", p.topic)
	}
}
