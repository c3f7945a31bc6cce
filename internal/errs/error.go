package errs

import (
	"errors"
)

var (
	// ErrNotFound covers both a missing record and a record in the wrong
	// state for the requested transition.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the requested quantity cannot be committed over
	// the requested window.
	ErrUnavailable = errors.New("item is not available for the requested period")

	// ErrAlreadyExists maps unique-constraint violations (name, sku, code).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInUse maps foreign-key violations on delete.
	ErrInUse = errors.New("still referenced")

	ErrPastStartDate = errors.New("booking start date must be in the future")
	ErrInvalidWindow = errors.New("booking end date must be after start date")

	// ErrInconsistent marks corrupted stored state, such as a non-positive
	// persisted quantity. Never caused by user input.
	ErrInconsistent = errors.New("inconsistent stored state")
)
