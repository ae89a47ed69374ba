package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	identity *mockIdentityService
	oauth    *mockOAuthService
	userRepo *mockUserRepo
}

func newTestAuthService() (*authService, authServiceMocks) {
	mocks := authServiceMocks{
		identity: new(mockIdentityService),
		oauth:    new(mockOAuthService),
		userRepo: new(mockUserRepo),
	}

	srv := &authService{
		identity: mocks.identity,
		oauth:    mocks.oauth,
		userRepo: mocks.userRepo,
		policy:   newPasswordPolicy(nil),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return srv, mocks
}

func TestSignUp_NormalizesEmailAndSeedsUserDoc(t *testing.T) {
	srv, mocks := newTestAuthService()

	session := &entity.Session{UID: testUID, Email: "ana@example.com"}
	mocks.identity.On("SignUp", mock.Anything, "ana@example.com", "Segura123!").Return(session, nil)
	mocks.userRepo.On("EnsureExists", mock.Anything, testUID, "ana@example.com").Return(nil)

	got, err := srv.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "  Ana@Example.COM ",
		Password: "Segura123!",
	})

	require.NoError(t, err)
	assert.Equal(t, testUID, got.UID)
	mocks.identity.AssertExpectations(t)
	mocks.userRepo.AssertExpectations(t)
}

func TestSignUp_WeakPasswordRejectedLocally(t *testing.T) {
	srv, mocks := newTestAuthService()

	tests := []string{
		"corta1!",      // too short
		"minusculas1!", // no uppercase
		"SinNumeros!",  // no digit
		"SinEspecial1", // no special character
	}

	for _, password := range tests {
		_, err := srv.SignUp(context.Background(), &usecase.SignUpInput{
			Email:    "ana@example.com",
			Password: password,
		})
		assert.ErrorIs(t, err, domainerrors.ErrWeakPassword, "password %q", password)
	}

	mocks.identity.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignIn_EnsureFailureDoesNotBreakSignIn(t *testing.T) {
	srv, mocks := newTestAuthService()

	session := &entity.Session{UID: testUID, Email: "ana@example.com"}
	mocks.identity.On("SignInWithPassword", mock.Anything, "ana@example.com", "Segura123!").Return(session, nil)
	mocks.userRepo.On("EnsureExists", mock.Anything, testUID, "ana@example.com").Return(errors.New("firestore down"))

	got, err := srv.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "ana@example.com",
		Password: "Segura123!",
	})

	require.NoError(t, err, "the seeded document is best-effort")
	assert.Equal(t, testUID, got.UID)
}

func TestSignInWithGoogle_MintsCustomToken(t *testing.T) {
	srv, mocks := newTestAuthService()

	mocks.oauth.On("VerifyGoogleIDToken", mock.Anything, "google-token").Return(&service.GoogleUser{
		Sub:           "google-sub-1",
		Email:         "Ana@Example.com",
		Name:          "Ana García",
		EmailVerified: true,
	}, nil)
	mocks.identity.On("GetOrCreateUser", mock.Anything, "ana@example.com", "Ana García").
		Return(&entity.User{UID: testUID, Email: "ana@example.com"}, nil)
	mocks.identity.On("CustomToken", mock.Anything, testUID).Return("custom-token", nil)
	mocks.userRepo.On("EnsureExists", mock.Anything, testUID, "ana@example.com").Return(nil)

	session, err := srv.SignInWithGoogle(context.Background(), &usecase.GoogleSignInInput{IDToken: "google-token"})

	require.NoError(t, err)
	assert.Equal(t, "custom-token", session.CustomToken)
	assert.Equal(t, testUID, session.UID)
	mocks.identity.AssertExpectations(t)
}

func TestSignInWithGoogle_RejectedTokenMapsToDomainError(t *testing.T) {
	srv, mocks := newTestAuthService()

	mocks.oauth.On("VerifyGoogleIDToken", mock.Anything, "bad-token").Return(nil, errors.New("expired"))

	_, err := srv.SignInWithGoogle(context.Background(), &usecase.GoogleSignInInput{IDToken: "bad-token"})

	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
	mocks.identity.AssertNotCalled(t, "GetOrCreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	srv, mocks := newTestAuthService()

	t.Run("revokes sessions", func(t *testing.T) {
		mocks.identity.On("RevokeSessions", mock.Anything, testUID).Return(nil)

		require.NoError(t, srv.Logout(context.Background(), testUID))
		mocks.identity.AssertExpectations(t)
	})

	t.Run("requires a user", func(t *testing.T) {
		err := srv.Logout(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("delegates after strength check", func(t *testing.T) {
		srv, mocks := newTestAuthService()
		mocks.identity.On("UpdatePassword", mock.Anything, testUID, "Nueva123!").Return(nil)

		err := srv.ChangePassword(context.Background(), testUID, &usecase.ChangePasswordInput{NewPassword: "Nueva123!"})

		require.NoError(t, err)
		mocks.identity.AssertExpectations(t)
	})

	t.Run("weak password never reaches the provider", func(t *testing.T) {
		srv, mocks := newTestAuthService()

		err := srv.ChangePassword(context.Background(), testUID, &usecase.ChangePasswordInput{NewPassword: "debil"})

		assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
		mocks.identity.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResetPassword_BlankEmailSendsNothing(t *testing.T) {
	srv, mocks := newTestAuthService()

	err := srv.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Email: "   "})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	mocks.identity.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything)
}

func TestResetPassword_Delegates(t *testing.T) {
	srv, mocks := newTestAuthService()
	mocks.identity.On("SendPasswordReset", mock.Anything, "ana@example.com").Return(nil)

	err := srv.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Email: " Ana@Example.com "})

	require.NoError(t, err)
	mocks.identity.AssertExpectations(t)
}
