package kafka

import (
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NewPaymentRequestMessage maps an order created event to a charge request.
// Each message carries a fresh random message id and saga id.
func NewPaymentRequestMessage(event order.CreatedEvent) PaymentRequestMessage {
	aggregate := event.Order()

	return PaymentRequestMessage{
		ID:                 uuid.NewString(),
		SagaID:             uuid.NewString(),
		CustomerID:         aggregate.CustomerID().String(),
		OrderID:            aggregate.ID().String(),
		Price:              aggregate.Price().Amount(),
		CreatedAt:          event.CreatedAt(),
		PaymentOrderStatus: PaymentOrderStatusPending,
	}
}

// NewPaymentCancelMessage maps an order cancelled event to a compensation
// request reversing the prior charge.
func NewPaymentCancelMessage(event order.CancelledEvent) PaymentRequestMessage {
	aggregate := event.Order()

	return PaymentRequestMessage{
		ID:                 uuid.NewString(),
		SagaID:             uuid.NewString(),
		CustomerID:         aggregate.CustomerID().String(),
		OrderID:            aggregate.ID().String(),
		Price:              aggregate.Price().Amount(),
		CreatedAt:          event.CreatedAt(),
		PaymentOrderStatus: PaymentOrderStatusCancelled,
	}
}

// NewRestaurantApprovalRequestMessage maps an order paid event to an
// approval request listing the ordered products.
func NewRestaurantApprovalRequestMessage(event order.PaidEvent) RestaurantApprovalRequestMessage {
	aggregate := event.Order()

	items := aggregate.Items()
	products := make([]ProductMessage, 0, len(items))
	for _, item := range items {
		products = append(products, ProductMessage{
			ID:       item.Product().ID().String(),
			Quantity: item.Quantity(),
		})
	}

	return RestaurantApprovalRequestMessage{
		ID:                    uuid.NewString(),
		SagaID:                uuid.NewString(),
		OrderID:               aggregate.ID().String(),
		RestaurantID:          aggregate.RestaurantID().String(),
		RestaurantOrderStatus: RestaurantOrderStatusPaid,
		Products:              products,
		Price:                 aggregate.Price().Amount(),
		CreatedAt:             event.CreatedAt(),
	}
}
