package syncer

import "errors"

// ErrUnknownMarketplace is returned when requested marketplace is not configured.
var ErrUnknownMarketplace = errors.New("unknown marketplace")
