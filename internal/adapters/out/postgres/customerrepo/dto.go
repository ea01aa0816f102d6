// Package customerrepo provides data transfer objects and mapping functions for the
// customer projection. The ordering service does not own customer data; it keeps a
// local read-only replica used to verify that an ordering customer exists.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure of the customer replica.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(255);not null"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "order_customers".
func (CustomerDTO) TableName() string {
	return "order_customers"
}

// toDomain converts a database DTO to a customer domain object.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Username, dto.FirstName, dto.LastName)
}
