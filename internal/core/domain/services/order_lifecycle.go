package services

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// OrderLifecycle is a stateless domain service that sequences order state
// transitions and stamps the lifecycle events consumed by the saga
// messaging layer. Every event carries a UTC timestamp taken at the moment
// of the transition.
//
// The service holds no state and is safe to share across concurrent
// handlers; the orders passed to it are not.
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle()
//	event, err := lifecycle.ValidateAndInitiateOrder(o, rest)
//	if err != nil {
//	    // validation failed: inactive restaurant or price mismatch
//	    return err
//	}
//	// o is now Pending; event feeds the outbound payment request
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// ValidateAndInitiateOrder validates a freshly built order against the
// restaurant projection and initializes it into Pending.
//
// Steps, in order:
//   - the restaurant must be active
//   - confirmed product names and prices are copied onto the order items
//     (matched by product id)
//   - the order's price reconciliation checks run
//   - the order is initialized (id, tracking id, item ids, Pending)
//
// Returns an OrderCreated event stamped with the current UTC time.
func (s OrderLifecycle) ValidateAndInitiateOrder(
	o *order.Order,
	r *restaurant.Restaurant,
) (order.CreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return order.CreatedEvent{}, err
	}
	if err := s.validateRestaurant(r); err != nil {
		return order.CreatedEvent{}, err
	}

	o.ConfirmProductInformation(r.Products())

	if err := o.ValidateOrder(); err != nil {
		return order.CreatedEvent{}, err
	}
	if err := o.Initialize(); err != nil {
		return order.CreatedEvent{}, err
	}

	return order.NewCreatedEvent(o, time.Now().UTC()), nil
}

// PayOrder transitions the order to Paid and returns an OrderPaid event
// for the restaurant approval request.
func (s OrderLifecycle) PayOrder(o *order.Order) (order.PaidEvent, error) {
	if err := o.Validate(); err != nil {
		return order.PaidEvent{}, err
	}
	if err := o.Pay(); err != nil {
		return order.PaidEvent{}, err
	}

	return order.NewPaidEvent(o, time.Now().UTC()), nil
}

// ApproveOrder transitions the order to its terminal Approved state.
// No event is produced: approval has no downstream saga step.
func (s OrderLifecycle) ApproveOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Approve()
}

// CancelOrderPayment transitions a paid order to Canceling and returns an
// OrderCancelled event used to trigger the compensating payment request.
// The failure messages are carried by the caller to the terminal
// cancellation; this step does not record them.
func (s OrderLifecycle) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
) (order.CancelledEvent, error) {
	if err := o.Validate(); err != nil {
		return order.CancelledEvent{}, err
	}
	if err := o.InitCancel(failureMessages); err != nil {
		return order.CancelledEvent{}, err
	}

	return order.NewCancelledEvent(o, time.Now().UTC()), nil
}

// CancelOrder transitions the order to its terminal Canceled state and
// records the non-blank failure messages. No event is produced: terminal
// cancellation completes the compensation.
func (s OrderLifecycle) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Cancel(failureMessages)
}

func (s OrderLifecycle) validateRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsActive() {
		return errs.NewDomainRuleError(fmt.Sprintf("Restaurant %s is not active!", r.ID()))
	}
	return nil
}
