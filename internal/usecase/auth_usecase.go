// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// SignInInput defines the data required to sign in with email and password.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInInput carries the Google ID token obtained by the client's
// federated popup flow.
type GoogleSignInInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// ChangePasswordInput defines the data required to change the password of the
// authenticated user.
type ChangePasswordInput struct {
	NewPassword string `json:"newPassword" validate:"required,password"`
}

// ResetPasswordInput defines the data required to request a reset email.
type ResetPasswordInput struct {
	Email string `json:"email"`
}

// AuthUsecase defines the authentication operations exposed to the delivery layer.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Session, error)
	SignIn(ctx context.Context, input *SignInInput) (*entity.Session, error)
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*entity.Session, error)
	Logout(ctx context.Context, uid string) error
	ChangePassword(ctx context.Context, uid string, input *ChangePasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
