package billing

import "context"

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	// GetByOrderNoForUpdate reads the order under a row lock, linearizing
	// concurrent callbacks for the same order. Must be called inside a
	// transaction.
	GetByOrderNoForUpdate(ctx context.Context, orderNo string) (*Order, error)
	Update(ctx context.Context, o *Order) error
	// ListSucceededByUserID returns the user's successful orders newest first.
	ListSucceededByUserID(ctx context.Context, userID uint) ([]*Order, error)
}
