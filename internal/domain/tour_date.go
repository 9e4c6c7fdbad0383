package domain

import "time"

type TourDate struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	TourID        int64     `json:"tourId" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	MaxGroupSize  int       `json:"maxGroupSize" validate:"required,gte=1"`
	PriceOverride *int64    `json:"priceOverride,omitempty" validate:"omitempty,gte=0"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Tour     *Tour     `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:TourDateID"`
}

// UnitPrice resolves the effective per-person price: the date's override when
// present, otherwise the parent tour's base price. Tour must be loaded.
func (d *TourDate) UnitPrice() int64 {
	if d.PriceOverride != nil {
		return *d.PriceOverride
	}
	if d.Tour != nil {
		return d.Tour.BasePrice
	}
	return 0
}
