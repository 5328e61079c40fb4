package models

import "errors"

// Domain-specific errors for entity lookups
var (
	// ErrBoardNotFound indicates the requested board id does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrColumnNotFound indicates the requested column id does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates the requested card id does not exist
	ErrCardNotFound = errors.New("card not found")
)
