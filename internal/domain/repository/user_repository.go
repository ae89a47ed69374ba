package repository

import "context"

// UserRepository manages the backing users/{uid} document that anchors a
// user's profile fields and contact subcollection.
type UserRepository interface {
	// EnsureExists creates the users/{uid} document if it is absent and
	// leaves it untouched otherwise. Called after every successful
	// authentication so per-user data always has a parent document.
	EnsureExists(ctx context.Context, uid, email string) error
}
