package auth

import (
	"context"
	"errors"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// CredentialLookup is the slice of the user store the authenticator needs:
// resolving an identifier to its stored credential record.
type CredentialLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// dummyHash is a bcrypt hash of a random string. When the identifier is
// unknown we still verify the candidate password against it so that the
// absent-record path costs roughly the same as the wrong-password path.
// Best effort only; it narrows the timing side channel, it does not
// eliminate it.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Identity is the outcome of a successful authentication.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// Authenticator checks a plaintext credential against the stored record.
type Authenticator struct {
	lookup CredentialLookup
	hasher *Hasher
}

func NewAuthenticator(lookup CredentialLookup, hasher *Hasher) *Authenticator {
	return &Authenticator{lookup: lookup, hasher: hasher}
}

// Authenticate resolves email and verifies password against the stored
// hash. Unknown identifier and wrong password both come back as
// domain.ErrInvalidCredentials; store failures propagate unchanged.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	record, err := a.lookup.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			a.hasher.Verify(password, dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(password, record.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return &Identity{ID: record.ID, Email: record.Email, Role: record.Role}, nil
}
