package transaction

import "errors"

var (
	// ErrNotFound is returned when the requested transaction does not exist
	// or has been deleted.
	ErrNotFound = errors.New("transaction not found")

	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingCategory = errors.New("category is required")
	ErrMissingDate     = errors.New("date is required")
)

// IsValidationError reports whether err is one of the input validation
// sentinels, so callers can map it to a user-facing rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingCategory) ||
		errors.Is(err, ErrMissingDate)
}
