package restaurantrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository over the local
// catalog replica using GORM. Only the products an order references are
// loaded; the rest of the catalog stays out of memory.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// GetInformation retrieves the restaurant together with the referenced
// subset of its catalog products.
func (r *GormRestaurantRepository) GetInformation(
	ctx context.Context,
	restaurantID kernel.UUID,
	productIDs []kernel.UUID,
) (*restaurant.Restaurant, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", restaurantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())
		}
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, productID.Bytes())
	}

	var productDTOs []ProductDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Where("id IN ?", rawIDs).
		Find(&productDTOs).Error
	if err != nil {
		return nil, err
	}

	if len(productDTOs) == 0 {
		return nil, errs.NewObjectNotFoundError("restaurant products", restaurantID.String())
	}

	return toDomain(dto, productDTOs)
}
