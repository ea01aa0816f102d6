package kafka

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// RestaurantApprovalRequestKafkaPublisher publishes restaurant approval
// requests for paid orders. Implements ports.RestaurantApprovalRequestPublisher.
type RestaurantApprovalRequestKafkaPublisher struct {
	producer ports.MessageProducer
	topic    string
	logger   *slog.Logger
}

// NewRestaurantApprovalRequestKafkaPublisher creates a publisher writing to the given topic.
func NewRestaurantApprovalRequestKafkaPublisher(
	producer ports.MessageProducer,
	topic string,
	logger *slog.Logger,
) *RestaurantApprovalRequestKafkaPublisher {
	return &RestaurantApprovalRequestKafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishPaid requests restaurant approval for a paid order.
func (p *RestaurantApprovalRequestKafkaPublisher) PublishPaid(ctx context.Context, event order.PaidEvent) error {
	message := NewRestaurantApprovalRequestMessage(event)
	return p.producer.Publish(ctx, p.topic, message.OrderID, message,
		p.onResult(message.ID, message.OrderID))
}

func (p *RestaurantApprovalRequestKafkaPublisher) onResult(messageID, orderID string) func(error) {
	return func(err error) {
		if err != nil {
			p.logger.Error("restaurant approval request delivery failed",
				"messageId", messageID,
				"orderId", orderID,
				"topic", p.topic,
				"error", err)
			return
		}
		p.logger.Info("restaurant approval request delivered",
			"messageId", messageID,
			"orderId", orderID,
			"topic", p.topic)
	}
}
