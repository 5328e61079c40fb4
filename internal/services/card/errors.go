// Package card contains the business logic for card operations
package card

import "errors"

// Validation errors surfaced to the caller as client input problems
var (
	// ErrEmptyTitle indicates a missing or empty card title
	ErrEmptyTitle = errors.New("card title cannot be empty")
)
