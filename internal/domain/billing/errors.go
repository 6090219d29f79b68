package billing

import "errors"

var (
	// ErrOrderNotFound means no order exists for the given order number.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderFinal means the order already reached a terminal state and the
	// requested transition was not applied.
	ErrOrderFinal = errors.New("order already in terminal state")
)
