package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrNotSaved marks a mutation that was applied in memory but could not be persisted.
	ErrNotSaved = errors.New("state not saved")
)
