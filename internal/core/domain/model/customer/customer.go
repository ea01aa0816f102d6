// Package customer provides the read-only customer projection used to
// verify that an order references an existing customer.
package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a projection of a customer registered with the customer
// service. The ordering context only checks existence; it never mutates
// customer data.
type Customer struct {
	id        kernel.UUID
	username  string
	firstName string
	lastName  string

	isConstructed bool
}

// NewCustomer creates a customer projection.
func NewCustomer(id kernel.UUID, username, firstName, lastName string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		username:      username,
		firstName:     firstName,
		lastName:      lastName,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Username returns the customer's login name.
func (c *Customer) Username() string {
	return c.username
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}
