package cache

import "errors"

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("not found")
