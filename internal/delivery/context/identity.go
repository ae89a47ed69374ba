package context

import (
	"context"

	"agenda/internal/domain/entity"
)

// WithUser returns a new context carrying the authenticated user. Set by the
// auth middleware after the session token has been verified.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// GetUser extracts the authenticated user from the context, or nil when the
// request carries no verified session.
func GetUser(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}

// GetUserUID returns the authenticated user's uid, or the empty string when
// there is no session. The uid is the partition key for all per-user data.
func GetUserUID(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.UID
	}

	return ""
}
