package studio

import "context"

// RecordRepository persists GenerationRecords. Records are insert-only and
// never contended, so there are no update or locking operations.
type RecordRepository interface {
	Create(ctx context.Context, r *GenerationRecord) error
	// ListByUserID returns the user's records newest first.
	ListByUserID(ctx context.Context, userID uint) ([]*GenerationRecord, error)
}
