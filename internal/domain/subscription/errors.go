package subscription

import "errors"

// ErrNotFound means the user has no subscription row.
var ErrNotFound = errors.New("subscription not found")
