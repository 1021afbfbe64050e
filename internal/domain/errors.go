package domain

import "errors"

var (
	// ErrInvalidInput marks values rejected by input validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by repositories when a session has no stored ledger.
	ErrNotFound = errors.New("not found")

	// ErrInvariantViolation is returned when a computation would produce a malformed result.
	ErrInvariantViolation = errors.New("invariant violation")
)
