package booking

import "tourcrm/internal/domain"

// CustomerInput identifies the booking customer by phone. An existing
// customer with the same phone is reused as-is.
type CustomerInput struct {
	FullName string `json:"fullName" binding:"required" validate:"required"`
	Phone    string `json:"phone" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
	Telegram string `json:"telegram"`
}

type CreateBookingRequest struct {
	TourDateID int64         `json:"tourDateId" binding:"required" validate:"required"`
	Customer   CustomerInput `json:"customer" binding:"required" validate:"required"`
	People     int           `json:"people" binding:"required,gte=1" validate:"required,gte=1"`
	Note       string        `json:"note"`
}

type UpdateBookingRequest struct {
	People *int    `json:"people" binding:"omitempty,gte=1"`
	Note   *string `json:"note"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
}

// Quote is the price for a party on a given departure.
type Quote struct {
	UnitPrice  int64 `json:"unitPrice"`
	TotalPrice int64 `json:"totalPrice"`
}
