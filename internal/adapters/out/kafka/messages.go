package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment order statuses carried on outbound payment requests.
const (
	PaymentOrderStatusPending   = "PENDING"
	PaymentOrderStatusCancelled = "CANCELLED"
)

// RestaurantOrderStatusPaid is the only status carried on outbound
// restaurant approval requests.
const RestaurantOrderStatusPaid = "PAID"

// PaymentRequestMessage is the wire format of a payment saga step. A
// PENDING status requests a charge; a CANCELLED status requests the
// compensation of a prior charge.
type PaymentRequestMessage struct {
	ID                 string          `json:"id"`
	SagaID             string          `json:"sagaId"`
	CustomerID         string          `json:"customerId"`
	OrderID            string          `json:"orderId"`
	Price              decimal.Decimal `json:"price"`
	CreatedAt          time.Time       `json:"createdAt"`
	PaymentOrderStatus string          `json:"paymentOrderStatus"`
}

// RestaurantApprovalRequestMessage is the wire format of a restaurant
// approval saga step for a paid order.
type RestaurantApprovalRequestMessage struct {
	ID                    string           `json:"id"`
	SagaID                string           `json:"sagaId"`
	OrderID               string           `json:"orderId"`
	RestaurantID          string           `json:"restaurantId"`
	RestaurantOrderStatus string           `json:"restaurantOrderStatus"`
	Products              []ProductMessage `json:"products"`
	Price                 decimal.Decimal  `json:"price"`
	CreatedAt             time.Time        `json:"createdAt"`
}

// ProductMessage identifies one ordered product and its quantity.
type ProductMessage struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}
