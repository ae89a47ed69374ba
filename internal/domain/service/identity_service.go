// Package service defines interfaces for external collaborators of the
// domain, implemented under internal/infra.
package service

import (
	"context"

	"agenda/internal/domain/entity"
)

// IdentityService wraps the identity provider. Credential storage and
// verification happen entirely on the provider side; this service never sees
// a password hash.
type IdentityService interface {
	// SignUp creates a new identity record and returns an active session.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// SignInWithPassword authenticates an existing identity record.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SendPasswordReset dispatches a password reset email to the address.
	SendPasswordReset(ctx context.Context, email string) error

	// UpdatePassword replaces the password of the given account.
	UpdatePassword(ctx context.Context, uid, newPassword string) error

	// RevokeSessions invalidates every refresh token of the account.
	RevokeSessions(ctx context.Context, uid string) error

	// VerifyIDToken validates a session token and returns the user it belongs to.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.User, error)

	// GetOrCreateUser resolves a provider account by email, creating it when
	// absent. Used by the federated sign-in path.
	GetOrCreateUser(ctx context.Context, email, displayName string) (*entity.User, error)

	// CustomToken mints a token the client can exchange for a session.
	CustomToken(ctx context.Context, uid string) (string, error)
}
