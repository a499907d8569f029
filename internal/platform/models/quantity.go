package models

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// QuantityMoreThanTen is quantity token meaning "more than ten".
	QuantityMoreThanTen Quantity = ">10"
	// QuantityLow is quantity token meaning low (reserve) stock.
	QuantityLow Quantity = "1"

	moreThanTenStock = 100
	lowStock         = 0
)

// ErrMalformedQuantity is returned when quantity token is neither known token nor integer.
var ErrMalformedQuantity = errors.New("malformed quantity")

// Quantity is raw quantity token from inventory.
type Quantity string

// Stock resolves quantity token into stock count.
func (q Quantity) Stock() (int, error) {
	switch q {
	case QuantityMoreThanTen:
		return moreThanTenStock, nil
	case QuantityLow:
		return lowStock, nil
	}

	count, err := strconv.Atoi(string(q))
	if err != nil {
		return 0, &QuantityError{Quantity: q, Err: err}
	}

	return count, nil
}

// QuantityError describes quantity which can't be resolved.
type QuantityError struct {
	Code     string
	Quantity Quantity
	Err      error
}

func (e *QuantityError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s %q: %s", ErrMalformedQuantity, e.Quantity, e.Err)
	}
	return fmt.Sprintf("%s %q for code %q: %s", ErrMalformedQuantity, e.Quantity, e.Code, e.Err)
}

// Unwrap returns ErrMalformedQuantity and underlying parsing error.
func (e *QuantityError) Unwrap() []error {
	return []error{ErrMalformedQuantity, e.Err}
}
