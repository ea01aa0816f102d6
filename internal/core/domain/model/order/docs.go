// Package order provides domain entities and business logic for order
// lifecycle management in the ordering system. It implements the Order
// aggregate root with strict price reconciliation and saga state
// transitions.
//
// The package includes:
//   - Order: The aggregate root owning identity, items, address, price, status, and failure reasons
//   - Item: An order line owned exclusively by one Order
//   - Status: A state machine that enforces valid order status transitions
//   - CreatedEvent, PaidEvent, CancelledEvent: immutable lifecycle snapshots
//
// Key business rules:
//   - Total price must be positive and equal the sum of item subtotals
//   - Item prices must match the restaurant-confirmed product prices
//   - Status follows Pending -> Paid -> Approved, with cancellation paths
//     Pending -> Canceled and Paid -> Canceling -> Canceled
//   - Initialization assigns ids exactly once; illegal transitions fail
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
