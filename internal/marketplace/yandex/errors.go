package yandex

import "errors"

// ErrIncompleteCatalog is returned when paging stops making progress before the last page.
var ErrIncompleteCatalog = errors.New("incomplete offer catalog")
