package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a food order in the system. It is the aggregate root that
// owns the order's identity, items, delivery address, price, status, and
// failure reasons, and enforces every lifecycle invariant.
//
// Order follows these invariants:
//   - Total price is strictly greater than zero
//   - Total price exactly equals the sum of item subtotals (scale-aware)
//   - Each item's price matches the restaurant-confirmed product price
//   - Status transitions follow the saga state machine (see Status)
//   - Can only be created through NewOrder or RestoreOrder
//
// An order is created unattached: it has no id, no tracking id, and Unknown
// status until Initialize assigns them. Initialize is callable exactly once.
//
// Order is not safe for concurrent use. Each handler must load its own
// copy, mutate it, and persist it; conflicting concurrent writes are
// rejected by the persistence layer's concurrency control.
type Order struct {
	// id is assigned during initialization, never before
	id kernel.UUID

	customerID   kernel.UUID
	restaurantID kernel.UUID

	// deliveryAddress is a copied value, not a reference to customer data
	deliveryAddress kernel.Address

	// price is the declared order total, reconciled against item subtotals
	price kernel.Money

	// items are owned exclusively by this order
	items []*Item

	// trackingID is the public correlation id, distinct from the internal id
	trackingID kernel.UUID

	// status represents the current state in the saga lifecycle
	status Status

	// failureMessages accumulates non-blank cancellation reasons, append-only
	failureMessages []string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unattached Order from already-parsed command data.
// This is pure data assembly: referential shape is checked (valid ids, a
// constructed address and price, at least one item), but business
// validation is deferred to ValidateOrder so that a complete, precise
// domain error can be produced once the restaurant projection is known.
func NewOrder(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []*Item,
) (*Order, error) {
	order := &Order{
		status:        Unknown,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setPrice(price),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs a persisted Order, including identity, tracking
// id, status, and accumulated failure messages. Used only by the
// persistence layer.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []*Item,
	trackingID kernel.UUID,
	status Status,
	failureMessages []string,
) (*Order, error) {
	order, err := NewOrder(customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		id.Validate(),
		trackingID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.id = id
	order.trackingID = trackingID
	order.status = status
	order.failureMessages = append([]string(nil), failureMessages...)
	for idx, item := range order.items {
		item.initialize(id, int64(idx)+1)
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier (zero UUID until initialized).
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the copied delivery address.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// Price returns the declared order total.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order's lines. The slice header is a copy but the items
// themselves belong to the aggregate and must not be mutated by callers.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// TrackingID returns the public correlation id (zero UUID until
// initialized).
func (o *Order) TrackingID() kernel.UUID {
	return o.trackingID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns a copy of the accumulated failure reasons.
func (o *Order) FailureMessages() []string {
	return append([]string(nil), o.failureMessages...)
}

// Initialize assigns the order identity and moves it into the Pending
// state: an internal id, a public tracking id, and sequential item ids
// starting at 1. Callable exactly once; a second call on an initialized
// order fails.
func (o *Order) Initialize() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return errs.NewDomainRuleError("Order is not in the correct state for initialization!")
	}

	o.id = kernel.NewUUID()
	o.trackingID = kernel.NewUUID()
	o.status = Pending

	for idx, item := range o.items {
		item.initialize(o.id, int64(idx)+1)
	}

	return nil
}

// ValidateOrder runs the price reconciliation checks, in order: total must
// be positive, total must equal the sum of item subtotals, and every item's
// declared price must match the restaurant-confirmed product price. The
// first failing check wins.
func (o *Order) ValidateOrder() error {
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	if err := o.validateItemsTotal(); err != nil {
		return err
	}
	return o.validateItemPrices()
}

// Pay transitions the order from Pending to Paid after the payment service
// confirmed the charge.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve transitions the order from Paid to Approved after the restaurant
// accepted it. Approved is terminal.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel transitions the order from Paid to Canceling, starting the
// payment compensation. The failure messages are accepted but not recorded
// at this step; only the terminal Cancel appends them.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to the terminal Canceled state, from either
// Pending (payment never completed) or Canceling (compensation finished),
// and appends all non-blank failure messages. Messages accumulate across
// calls and are never overwritten.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendFailureMessages(failureMessages)
	return nil
}

func (o *Order) appendFailureMessages(failureMessages []string) {
	for _, message := range failureMessages {
		if strings.TrimSpace(message) == "" {
			continue
		}
		o.failureMessages = append(o.failureMessages, message)
	}
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewDomainRuleError("Total price must be greater than zero!")
	}
	return nil
}

func (o *Order) validateItemsTotal() error {
	itemsTotal := kernel.ZeroMoney()
	for _, item := range o.items {
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewDomainRuleError(fmt.Sprintf(
			"Total price: %s is not equal to order items total: %s!",
			o.price, itemsTotal,
		))
	}
	return nil
}

func (o *Order) validateItemPrices() error {
	for _, item := range o.items {
		if !item.isPriceValid() {
			return errs.NewDomainRuleError(fmt.Sprintf(
				"Order item price: %s is not valid for product: %s!",
				item.Price(), item.Product().ID(),
			))
		}
	}
	return nil
}

// ConfirmProductInformation copies the authoritative name and price from
// matching catalog products onto the order's items. Matching is by product
// id; an item whose product is absent from the catalog keeps its unset
// price and will fail the subsequent price validation.
func (o *Order) ConfirmProductInformation(products []restaurant.Product) {
	for _, item := range o.items {
		for _, catalogProduct := range products {
			if item.Product().IsEqual(catalogProduct) {
				item.confirmProductInformation(catalogProduct.Name(), catalogProduct.Price())
			}
		}
	}
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
