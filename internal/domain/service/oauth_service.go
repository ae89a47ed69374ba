package service

import "context"

// GoogleUser holds the identity claims extracted from a verified Google ID token.
type GoogleUser struct {
	Sub           string // Google's stable account identifier
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// OAuthService verifies federated sign-in tokens issued by Google.
type OAuthService interface {
	VerifyGoogleIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
