package apiclient

import (
	"errors"
	"fmt"
)

// ErrBadStatus is returned when marketplace API responded with status 400 or higher.
var ErrBadStatus = errors.New("response status is not successful")

// StatusError describes failed API response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Unwrap returns ErrBadStatus.
func (e *StatusError) Unwrap() error {
	return ErrBadStatus
}
