// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the ordering system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - OrderLifecycle: sequences order state transitions against restaurant
//     and payment confirmations and stamps lifecycle events
//
// Domain services coordinate between aggregates, implementing business logic
// that spans bounded contexts following Domain-Driven Design principles.
package services
