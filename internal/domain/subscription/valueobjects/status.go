package valueobjects

import "fmt"

// SubscriptionStatus is the status of a subscription row.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusInactive SubscriptionStatus = "inactive"
)

// NewSubscriptionStatus validates a status string.
func NewSubscriptionStatus(s string) (SubscriptionStatus, error) {
	st := SubscriptionStatus(s)
	if st != StatusActive && st != StatusInactive {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return st, nil
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) String() string {
	return string(s)
}
