package subscription

import "context"

// Repository persists Subscription aggregates.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	// GetCurrentByUserID returns the authoritative subscription row for the
	// user, or ErrNotFound.
	GetCurrentByUserID(ctx context.Context, userID uint) (*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
}
