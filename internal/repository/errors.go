package repository

import "errors"

// ErrAccountNotFound is returned when no account matches the given id.
var ErrAccountNotFound = errors.New("account not found")
