package tourdate

import "time"

type CreateTourDateRequest struct {
	TourID        int64     `json:"tourId" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	MaxGroupSize  int       `json:"maxGroupSize" binding:"required,gte=1"`
	PriceOverride *int64    `json:"priceOverride" binding:"omitempty,gte=0"`
}

// UpdateTourDateRequest replaces the mutable fields; a null priceOverride
// clears the override so the tour's base price applies again.
type UpdateTourDateRequest struct {
	Date          time.Time `json:"date" binding:"required"`
	MaxGroupSize  int       `json:"maxGroupSize" binding:"required,gte=1"`
	PriceOverride *int64    `json:"priceOverride" binding:"omitempty,gte=0"`
}
