// Package identity defines the port to the external identity provider.
// Authentication itself is the provider's job; the application only verifies
// the ID tokens it issues and reads the claims.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidToken means the token failed verification: bad signature, wrong
// issuer or audience, or expired.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified claim set of an ID token.
type Identity struct {
	SubjectID     string
	Email         string
	Name          string
	EmailVerified bool
}

// Verifier checks an ID token and extracts its identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
