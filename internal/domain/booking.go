package domain

import "time"

type BookingStatus string

const (
	BookingNew       BookingStatus = "NEW"
	BookingPaid      BookingStatus = "PAID"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingNew, BookingPaid, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	TourDateID int64         `json:"tourDateId" validate:"required"`
	CustomerID int64         `json:"customerId" validate:"required"`
	People     int           `json:"people" validate:"required,gte=1"`
	TotalPrice int64         `json:"totalPrice"`
	Status     BookingStatus `json:"status" gorm:"default:NEW"`
	Note       string        `json:"note,omitempty" gorm:"type:text"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	TourDate *TourDate `json:"tourDate,omitempty" gorm:"foreignKey:TourDateID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
