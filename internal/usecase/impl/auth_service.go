package impl

import (
	"context"
	"log/slog"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"
	"agenda/internal/util"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity service.IdentityService
	oauth    service.OAuthService
	userRepo repository.UserRepository
	policy   passwordPolicy
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity service.IdentityService
	OAuth    service.OAuthService
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var strength *config.PasswordStrengthConfig
	if params.Config != nil {
		strength = params.Config.PasswordStrength
	}

	return &authService{
		identity: params.Identity,
		oauth:    params.OAuth,
		userRepo: params.UserRepo,
		policy:   newPasswordPolicy(strength),
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers the account with the identity provider and seeds the
// user's document so the contacts subcollection has a parent.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Session, error) {
	email := util.NormalizeEmail(input.Email)
	if !srv.policy.Validate(input.Password) {
		return nil, domainerrors.ErrWeakPassword
	}

	session, err := srv.identity.SignUp(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}

	srv.ensureUserDocument(ctx, session.UID, session.Email)
	srv.log(ctx).Info("User registered", slog.String("uid", session.UID))

	return session, nil
}

// SignIn authenticates an existing account.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	email := util.NormalizeEmail(input.Email)

	session, err := srv.identity.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}

	srv.ensureUserDocument(ctx, session.UID, session.Email)

	return session, nil
}

// SignInWithGoogle verifies the federated ID token, resolves the provider
// account for its email and mints a custom token the client exchanges for a
// session.
func (srv *authService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*entity.Session, error) {
	googleUser, err := srv.oauth.VerifyGoogleIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrGoogleTokenInvalid
	}

	user, err := srv.identity.GetOrCreateUser(ctx, util.NormalizeEmail(googleUser.Email), googleUser.Name)
	if err != nil {
		return nil, err
	}

	customToken, err := srv.identity.CustomToken(ctx, user.UID)
	if err != nil {
		return nil, err
	}

	srv.ensureUserDocument(ctx, user.UID, user.Email)
	srv.log(ctx).Info("Google sign-in", slog.String("uid", user.UID))

	return &entity.Session{
		UID:         user.UID,
		Email:       user.Email,
		CustomToken: customToken,
	}, nil
}

// Logout revokes every refresh token of the account, ending all sessions.
func (srv *authService) Logout(ctx context.Context, uid string) error {
	if err := requireUser(uid); err != nil {
		return err
	}

	if err := srv.identity.RevokeSessions(ctx, uid); err != nil {
		return err
	}

	srv.log(ctx).Info("User logged out", slog.String("uid", uid))

	return nil
}

// ChangePassword replaces the authenticated user's password after a local
// strength check.
func (srv *authService) ChangePassword(ctx context.Context, uid string, input *usecase.ChangePasswordInput) error {
	if err := requireUser(uid); err != nil {
		return err
	}
	if !srv.policy.Validate(input.NewPassword) {
		return domainerrors.ErrWeakPassword
	}

	return srv.identity.UpdatePassword(ctx, uid, input.NewPassword)
}

// ResetPassword dispatches the reset email. A blank address is rejected
// before the provider is contacted.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := util.NormalizeEmail(input.Email)
	if util.IsBlank(email) {
		return domainerrors.ErrValidationFailed.WithDetails("debes escribir un correo válido")
	}

	return srv.identity.SendPasswordReset(ctx, email)
}

// ensureUserDocument seeds users/{uid} on every sign-in. A failure here must
// not break the sign-in itself, so it is logged and swallowed.
func (srv *authService) ensureUserDocument(ctx context.Context, uid, email string) {
	if err := srv.userRepo.EnsureExists(ctx, uid, email); err != nil {
		srv.log(ctx).Error("Failed to ensure user document",
			slog.String("uid", uid),
			slog.Any("error", err))
	}
}
