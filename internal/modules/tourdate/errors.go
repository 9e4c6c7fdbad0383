package tourdate

import "errors"

var ErrTourDateNotFound = errors.New("tour date not found")
