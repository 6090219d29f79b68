package user

import "errors"

var (
	// ErrNotFound means no profile row exists for the subject id.
	ErrNotFound = errors.New("user not found")

	// ErrInsufficientCredits is returned by the conditional debit when the
	// balance no longer covers the cost at commit time.
	ErrInsufficientCredits = errors.New("insufficient credits")
)
