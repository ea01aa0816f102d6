package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// OrderCreatedMessage is the confirmation text returned to the caller on a
// successful creation.
const OrderCreatedMessage = "Order created successfully"

// CreateOrderResponse carries the public outcome of an order creation: the
// tracking id to follow the order with, the initial status, and a
// human-readable confirmation.
type CreateOrderResponse struct {
	OrderTrackingID kernel.UUID
	OrderStatus     order.Status
	Message         string
}

// CreateOrderCommandHandler handles the business logic for order creation.
// It verifies the referenced customer and restaurant exist, builds and
// validates the order through the domain service, persists it, and hands
// the resulting lifecycle event to the payment request publisher.
//
// The lookup-validate-persist sequence runs inside a single unit of work:
// if the commit fails, no payment request is published.
type CreateOrderCommandHandler struct {
	uowFactory       CreateOrderUoWFactory
	lifecycle        services.OrderLifecycle
	paymentPublisher ports.PaymentRequestPublisher
	logger           *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	lifecycle services.OrderLifecycle,
	paymentPublisher ports.PaymentRequestPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		lifecycle:        lifecycle,
		paymentPublisher: paymentPublisher,
		logger:           logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order creation command.
//
// Steps:
//  1. look up the customer; absence surfaces as a not-found error
//  2. look up the restaurant projection for the requested products
//  3. build the order from the command (pure data transformation)
//  4. validate and initialize through the domain service
//  5. persist and commit
//  6. publish the payment request derived from the OrderCreated event
//
// Domain validation failures propagate unchanged.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		h.logger.WarnContext(ctx, "customer lookup failed", "customer_id", cmd.CustomerID(), "error", err)
		return CreateOrderResponse{}, err
	}

	rest, err := uow.RestaurantRepository().GetInformation(ctx, cmd.RestaurantID(), cmd.ProductIDs())
	if err != nil {
		h.logger.WarnContext(ctx, "restaurant lookup failed", "restaurant_id", cmd.RestaurantID(), "error", err)
		return CreateOrderResponse{}, err
	}

	newOrder, err := buildOrder(cmd)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	event, err := h.lifecycle.ValidateAndInitiateOrder(newOrder, rest)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResponse{}, fmt.Errorf("order %s not saved: %w", newOrder.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", newOrder.ID(), "tracking_id", newOrder.TrackingID())

	if err = h.paymentPublisher.PublishCreated(ctx, event); err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{
		OrderTrackingID: newOrder.TrackingID(),
		OrderStatus:     newOrder.Status(),
		Message:         OrderCreatedMessage,
	}, nil
}

// buildOrder maps the command onto a fresh unattached aggregate. This is
// pure data transformation; validation happens in the domain service.
func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, cmdItem := range cmd.Items() {
		product, err := restaurant.NewProduct(cmdItem.ProductID())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(product, cmdItem.Quantity(), cmdItem.Price(), cmdItem.SubTotal())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.Price(),
		items,
	)
}
