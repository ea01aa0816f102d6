package kernel

import (
	"errors"

	"ordering/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created via
// NewAddress. It is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object holding a delivery address. It is copied onto
// an order at creation time rather than referenced, so later changes to a
// customer's address never affect orders already placed.
//
// Address is immutable and must be constructed through NewAddress, which
// requires all three components to be non-empty.
type Address struct {
	street     string
	postalCode string
	city       string

	isConstructed bool
}

// NewAddress creates a validated Address. Each component must be non-empty.
func NewAddress(street, postalCode, city string) (Address, error) {
	address := Address{
		isConstructed: true,
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setPostalCode(postalCode),
		address.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.postalCode == other.postalCode &&
		a.city == other.city
}

// Validate checks that the Address was properly constructed.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
