package platform

import (
	"errors"
)

// ErrAlreadyRunning is returned when sync can't be started because previous sync is not finished yet.
var ErrAlreadyRunning = errors.New("sync already running")
