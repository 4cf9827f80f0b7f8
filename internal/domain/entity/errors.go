package entity

import "errors"

// Validation failures raised by entity constructors.
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrAuthorRequired    = errors.New("author is required")
	ErrUnknownGenre      = errors.New("unknown genre")
	ErrInvalidLoanDays   = errors.New("loan days must be positive")
	ErrLoanAlreadyClosed = errors.New("loan already returned")
)
