// Package user holds the User aggregate: the application-owned profile row
// for an externally authenticated identity, including the credit balance.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumira-inc/lumira/internal/shared/biztime"
)

// Role values for users.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is the aggregate root for an application user. The identity provider
// owns authentication; we own the profile, the credit balance, and a synced
// copy of the email-verified flag. Credits are mutated only through the
// repository's atomic operations, never by writing this struct back wholesale.
type User struct {
	id        uint
	subjectID string // identity provider uid
	name      string
	email     string
	verified  bool
	credits   int
	role      string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a profile for a first-time login. starterCredits is the
// one-time grant configured by billing.
func NewUser(subjectID, name, email string, verified bool, starterCredits int) (*User, error) {
	if strings.TrimSpace(subjectID) == "" {
		return nil, fmt.Errorf("subject id is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if starterCredits < 0 {
		return nil, fmt.Errorf("starter credits cannot be negative")
	}
	if strings.TrimSpace(name) == "" {
		name = "New User"
	}

	now := biztime.NowUTC()
	return &User{
		subjectID: subjectID,
		name:      name,
		email:     email,
		verified:  verified,
		credits:   starterCredits,
		role:      RoleMember,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// SyncVerification updates the verified flag from the identity provider.
// Returns true when the stored value changed and needs persisting.
func (u *User) SyncVerification(verified bool) bool {
	if u.verified == verified {
		return false
	}
	u.verified = verified
	u.updatedAt = biztime.NowUTC()
	return true
}

// CanAfford reports whether the balance covers cost. This is only a
// pre-check; the authoritative re-verification happens in the repository's
// conditional debit.
func (u *User) CanAfford(cost int) bool {
	return u.credits >= cost
}

// SetID sets the user ID after persistence.
func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) ID() uint             { return u.id }
func (u *User) SubjectID() string    { return u.subjectID }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) Verified() bool       { return u.verified }
func (u *User) Credits() int         { return u.credits }
func (u *User) Role() string         { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ReconstructUser rebuilds a User from persistence.
func ReconstructUser(
	id uint,
	subjectID, name, email string,
	verified bool,
	credits int,
	role string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:        id,
		subjectID: subjectID,
		name:      name,
		email:     email,
		verified:  verified,
		credits:   credits,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}
