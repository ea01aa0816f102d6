package restaurant

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a read-only projection of a restaurant used to validate
// order contents. The ordering context never mutates it: the active flag
// and the product catalog are owned by the restaurant service and reach this
// context only through the restaurant lookup port.
type Restaurant struct {
	id       kernel.UUID
	products []Product
	active   bool

	isConstructed bool
}

// NewRestaurant creates a restaurant projection with its product catalog
// and availability flag. The catalog must not be empty.
func NewRestaurant(id kernel.UUID, products []Product, active bool) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewValueIsRequiredError("restaurant products")
	}

	return &Restaurant{
		id:            id,
		products:      products,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Products returns the restaurant's product catalog.
func (r *Restaurant) Products() []Product {
	return r.products
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}
