package domain

import "errors"

// Domain errors (no external dependencies). Every failure is local to one
// operation; the ledger always stays in its last-known-good state.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDate       = errors.New("invalid persian date")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidSnapshot   = errors.New("snapshot is missing required collections")
)
