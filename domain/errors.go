package domain

import "errors"

// ErrNotFound is wrapped by repositories when an id does not exist.
var ErrNotFound = errors.New("entity not found")
