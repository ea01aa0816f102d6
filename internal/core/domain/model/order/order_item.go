package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an Item instance was not
// created through the NewItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is an order line owned exclusively by one Order. Its id is local to
// the owning order and assigned sequentially, starting at 1, when the order
// is initialized; before that the item is unattached.
//
// Item invariants:
//   - quantity is a positive integer
//   - subTotal equals price * quantity
//   - price equals the restaurant-confirmed price of the referenced product
//     at validation time
//
// The last two are enforced by Order.ValidateOrder rather than at
// construction, because the confirmed product price is only known after the
// restaurant projection has been applied.
type Item struct {
	// id is assigned by the owning order during initialization
	id int64

	// orderID ties the item to its owning order, set during initialization
	orderID kernel.UUID

	// product references the ordered product; name and price are filled in
	// from the restaurant catalog during validation
	product restaurant.Product

	quantity int64
	price    kernel.Money
	subTotal kernel.Money

	isConstructed bool
}

// NewItem creates an unattached order line. Quantity must be positive;
// price and subTotal must be constructed Money values. The subtotal math
// and the price match against the restaurant catalog are checked later by
// Order.ValidateOrder.
func NewItem(product restaurant.Product, quantity int64, price, subTotal kernel.Money) (*Item, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if err := subTotal.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		product:       product,
		quantity:      quantity,
		price:         price,
		subTotal:      subTotal,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a persisted order line, including its assigned
// item id and owning order id.
func RestoreItem(
	id int64,
	orderID kernel.UUID,
	product restaurant.Product,
	quantity int64,
	price, subTotal kernel.Money,
) (*Item, error) {
	item, err := NewItem(product, quantity, price, subTotal)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item id local to the owning order (0 until initialized).
func (i *Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's id (zero UUID until initialized).
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Product returns the referenced product.
func (i *Item) Product() restaurant.Product {
	return i.product
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int64 {
	return i.quantity
}

// Price returns the unit price declared for this line.
func (i *Item) Price() kernel.Money {
	return i.price
}

// SubTotal returns the declared line total.
func (i *Item) SubTotal() kernel.Money {
	return i.subTotal
}

// isPriceValid reports whether the declared unit price is positive, matches
// the product price confirmed by the restaurant, and multiplies out to the
// declared subtotal.
func (i *Item) isPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.price.IsEqual(i.product.Price()) &&
		i.subTotal.IsEqual(i.price.Multiply(decimal.NewFromInt(i.quantity)))
}

// confirmProductInformation copies the authoritative name and price from
// the restaurant catalog onto the referenced product.
func (i *Item) confirmProductInformation(name string, price kernel.Money) {
	i.product = i.product.WithConfirmedInformation(name, price)
}

// initialize attaches the item to its owning order and assigns its
// sequential id. Called only by Order.Initialize.
func (i *Item) initialize(orderID kernel.UUID, id int64) {
	i.orderID = orderID
	i.id = id
}
