package repository

import "errors"

// ErrNotFound is returned when a requested product doesn't exist.
// Every store returns it so the service layer doesn't depend on
// driver-specific errors.
var ErrNotFound = errors.New("not found")
