package tour

import "errors"

var (
	ErrTourNotFound  = errors.New("tour not found")
	ErrInvalidStatus = errors.New("invalid tour status")
)
