// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient lookup by tracking id.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2)"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Status          int
	FailureMessages pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address columns within the order table.
type AddressDTO struct {
	Street     string
	PostalCode string
	City       string
}

// ItemDTO represents a single order line. The item id is local to the owning
// order, so the primary key is composite.
type ItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid"`
	ProductName string
	Quantity    int64
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	SubTotal    decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including items and accumulated failure messages.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:          item.ID(),
			OrderID:     item.OrderID().Bytes(),
			ProductID:   item.Product().ID().Bytes(),
			ProductName: item.Product().Name(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Amount(),
			SubTotal:    item.SubTotal().Amount(),
		})
	}

	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TrackingID:   aggregate.TrackingID().Bytes(),
		DeliveryAddress: AddressDTO{
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Price:           aggregate.Price().Amount(),
		Items:           itemDTOs,
		Status:          int(aggregate.Status()),
		FailureMessages: aggregate.FailureMessages(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, tracking id, status
// and failure messages using RestoreOrder. Items are ordered by their local
// id so the aggregate re-assigns identical sequential ids.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.PostalCode,
		dto.DeliveryAddress.City,
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].ID < dto.Items[j].ID
	})

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		address,
		kernel.NewMoney(dto.Price),
		items,
		trackingID,
		order.Status(dto.Status),
		dto.FailureMessages,
	)
}

func itemToDomain(orderID kernel.UUID, dto ItemDTO) (*order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	product, err := restaurant.NewProductWithInformation(
		productID,
		dto.ProductName,
		kernel.NewMoney(dto.Price),
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		dto.ID,
		orderID,
		product,
		dto.Quantity,
		kernel.NewMoney(dto.Price),
		kernel.NewMoney(dto.SubTotal),
	)
}
