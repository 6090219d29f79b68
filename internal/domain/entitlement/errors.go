package entitlement

import "errors"

var (
	// ErrNoActiveSubscription means no active subscription row backs the user.
	ErrNoActiveSubscription = errors.New("no active subscription")

	// ErrStyleNotPermitted means the plan does not cover the requested style.
	ErrStyleNotPermitted = errors.New("style not permitted by current plan")
)
