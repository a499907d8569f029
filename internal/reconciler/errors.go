package reconciler

import "errors"

// ErrMalformedPrice is returned when no price digits can be extracted from inventory price.
var ErrMalformedPrice = errors.New("malformed price")
