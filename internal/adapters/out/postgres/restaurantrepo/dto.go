// Package restaurantrepo provides data transfer objects and mapping functions for the
// restaurant catalog projection. The ordering service keeps a local replica of
// restaurants and their products, used to confirm product names and prices
// during order validation.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure of the restaurant replica.
type RestaurantDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for restaurant entities.
// Overrides GORM's default naming convention to use "order_restaurants".
func (RestaurantDTO) TableName() string {
	return "order_restaurants"
}

// ProductDTO represents a single catalog product of a restaurant.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "order_restaurant_products"
}

// toDomain converts restaurant and product DTOs to a restaurant domain object.
func toDomain(dto RestaurantDTO, productDTOs []ProductDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]restaurant.Product, 0, len(productDTOs))
	for _, productDTO := range productDTOs {
		product, productErr := productToDomain(productDTO)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return restaurant.NewRestaurant(id, products, dto.Active)
}

func productToDomain(dto ProductDTO) (restaurant.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.Product{}, err
	}

	return restaurant.NewProductWithInformation(id, dto.Name, kernel.NewMoney(dto.Price))
}
