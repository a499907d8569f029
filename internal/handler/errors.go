package handler

import "errors"

// ErrSyncFailed is returned when at least one channel failed.
var ErrSyncFailed = errors.New("sync failed")
