package restaurant

import (
	"ordering/internal/core/domain/model/kernel"
)

// Product identifies an item on a restaurant's menu. Two products are equal
// when their ids match, regardless of name or price: an order line carries a
// bare product reference, and the authoritative name and price are looked up
// from the restaurant's catalog by id during validation.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money
}

// NewProduct creates a bare product reference carrying only an id.
// Name and price stay unset until confirmed from a restaurant's catalog.
func NewProduct(id kernel.UUID) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}
	return Product{id: id}, nil
}

// NewProductWithInformation creates a catalog product with its confirmed
// name and price, as projected from the restaurant service.
func NewProductWithInformation(id kernel.UUID, name string, price kernel.Money) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}
	if err := price.Validate(); err != nil {
		return Product{}, err
	}
	return Product{id: id, name: name, price: price}, nil
}

// ID returns the product's unique identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name (empty until confirmed).
func (p Product) Name() string {
	return p.name
}

// Price returns the product price (zero-value Money until confirmed).
func (p Product) Price() kernel.Money {
	return p.price
}

// IsEqual compares two products by id only.
func (p Product) IsEqual(other Product) bool {
	return p.id.IsEqual(other.id)
}

// WithConfirmedInformation returns a copy of the product carrying the name
// and price confirmed by the owning restaurant.
func (p Product) WithConfirmedInformation(name string, price kernel.Money) Product {
	p.name = name
	p.price = price
	return p
}
