package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the read-only lookup contract for restaurant
// projections used during order validation.
type RestaurantRepository interface {
	// GetInformation retrieves a restaurant projection restricted to the
	// given products, carrying the active flag and the confirmed name and
	// price for each requested product that exists in the catalog.
	// Returns an errs.ObjectNotFoundError when the restaurant does not exist.
	GetInformation(ctx context.Context, restaurantID kernel.UUID, productIDs []kernel.UUID) (*restaurant.Restaurant, error)
}
