package domain

import "time"

type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullName" validate:"required"`
	Phone     string    `json:"phone" gorm:"uniqueIndex" validate:"required"`
	Email     string    `json:"email,omitempty"`
	Telegram  string    `json:"telegram,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
}
