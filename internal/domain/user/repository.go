package user

import "context"

// Repository persists User aggregates. Credit mutations are expressed as
// atomic operations rather than whole-aggregate writes so concurrent debits
// and top-ups cannot lose updates.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetBySubjectID(ctx context.Context, subjectID string) (*User, error)
	// GetBySubjectIDForUpdate reads the row under a row lock. Must be called
	// inside a transaction; the lock is held until commit or rollback.
	GetBySubjectIDForUpdate(ctx context.Context, subjectID string) (*User, error)
	UpdateVerification(ctx context.Context, userID uint, verified bool) error

	// DebitCredits decrements the balance by amount only if the balance still
	// covers it ("credits = credits - ? WHERE credits >= ?") and returns the
	// remaining balance. Returns ErrInsufficientCredits when the condition
	// fails; the balance is untouched in that case.
	DebitCredits(ctx context.Context, userID uint, amount int) (int, error)

	// AddCredits increments the balance by amount. The increment commutes
	// with concurrent debits, so no row lock is needed.
	AddCredits(ctx context.Context, userID uint, amount int) error
}
