// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and saga message publication.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer projection within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RestaurantRepoFactory provides access to the restaurant projection within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the saga response handlers performing a read-modify-write over
	// a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order creation transaction, which reads the
	// customer and restaurant projections and writes the new order
	// atomically.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
	}

	// CreateOrderUoWFactory creates new creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)
