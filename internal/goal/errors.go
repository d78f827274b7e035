package goal

import "errors"

var (
	// ErrNotFound is returned when the goal row is absent in a path that
	// does not get-or-create.
	ErrNotFound = errors.New("goal not found")

	ErrInvalidTarget = errors.New("target amount must be positive")
	ErrInvalidAmount = errors.New("amount must be positive")
)
