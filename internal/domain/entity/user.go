package entity

import "time"

// User is the identity-provider view of an account. The provider owns the
// credential lifecycle; this service only ever reads these fields.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Session is the token pair handed back to the client after a successful
// sign-up, sign-in or Google sign-in.
type Session struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	IDToken      string    `json:"idToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	CustomToken  string    `json:"customToken,omitempty"` // Set on the Google path; the client exchanges it for an ID token.
	ExpiresAt    time.Time `json:"expiresAt,omitzero"`
}
