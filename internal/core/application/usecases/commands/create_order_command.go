package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested order line inside a CreateOrderCommand:
// the product reference plus the declared quantity, unit price, and line
// subtotal. The declared figures are reconciled against the restaurant
// catalog by the domain layer, not here.
type CreateOrderItem struct {
	productID kernel.UUID
	quantity  int64
	price     kernel.Money
	subTotal  kernel.Money
}

// NewCreateOrderItem creates a validated order line for a creation command.
func NewCreateOrderItem(productID kernel.UUID, quantity int64, price, subTotal kernel.Money) (CreateOrderItem, error) {
	if err := errors.Join(
		productID.Validate(),
		price.Validate(),
		subTotal.Validate(),
	); err != nil {
		return CreateOrderItem{}, err
	}
	if quantity <= 0 {
		return CreateOrderItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return CreateOrderItem{
		productID: productID,
		quantity:  quantity,
		price:     price,
		subTotal:  subTotal,
	}, nil
}

// ProductID returns the referenced product id.
func (i CreateOrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i CreateOrderItem) Quantity() int64 {
	return i.quantity
}

// Price returns the declared unit price.
func (i CreateOrderItem) Price() kernel.Money {
	return i.price
}

// SubTotal returns the declared line total.
func (i CreateOrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// CreateOrderCommand represents a request to place a new food order.
// It carries the customer and restaurant references, the delivery address,
// the declared total price, and the requested order lines.
//
// Example:
//
//	item, _ := NewCreateOrderItem(productID, 2, price, subTotal)
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, address, total, []CreateOrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, lifecycle, paymentPublisher)
//	resp, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.Address
	price           kernel.Money
	items           []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the referenced ids, address, and price are constructed and
// that at least one item is present. Price reconciliation happens in the
// domain layer.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setPrice(price),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's id.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's id.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the requested delivery address.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// Price returns the declared order total.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// ProductIDs returns the distinct product references of the order lines,
// in request order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.productID]; ok {
			continue
		}
		seen[item.productID] = struct{}{}
		ids = append(ids, item.productID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}
