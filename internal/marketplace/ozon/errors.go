package ozon

import "errors"

// ErrIncompleteCatalog is returned when product list ends before reported total is reached.
var ErrIncompleteCatalog = errors.New("product list ended before reported total")
