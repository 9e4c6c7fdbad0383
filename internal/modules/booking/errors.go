package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrTourDateNotFound = errors.New("tour date not found")
	ErrInvalidStatus    = errors.New("invalid booking status")
)
