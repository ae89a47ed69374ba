// Package identity wraps the Firebase identity provider: the admin SDK for
// token verification and account management, and the Identity Toolkit REST
// API for the credential flows the admin SDK cannot serve.
package identity

import (
	"context"
	"log/slog"
	"net/http"

	"agenda/config"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp creates the shared Firebase app backing both the identity provider
// and the Firestore client.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// firebaseIdentity implements service.IdentityService.
type firebaseIdentity struct {
	authClient *auth.Client
	rest       *restClient
	logger     *slog.Logger
}

// NewIdentityService is the constructor for firebaseIdentity.
func NewIdentityService(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.IdentityService, error) {
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &firebaseIdentity{
		authClient: authClient,
		rest:       newRESTClient(cfg.Firebase.WebAPIKey, http.DefaultClient, logger),
		logger:     logger,
	}, nil
}

// SignUp creates the identity record and returns the fresh session issued by
// the provider.
func (svc *firebaseIdentity) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	return svc.rest.signUp(ctx, email, password)
}

// SignInWithPassword authenticates against the provider's stored credential.
func (svc *firebaseIdentity) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	return svc.rest.signInWithPassword(ctx, email, password)
}

// SendPasswordReset dispatches the provider's reset email.
func (svc *firebaseIdentity) SendPasswordReset(ctx context.Context, email string) error {
	return svc.rest.sendPasswordReset(ctx, email)
}

// UpdatePassword replaces the account password through the admin SDK.
func (svc *firebaseIdentity) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	update := (&auth.UserToUpdate{}).Password(newPassword)
	if _, err := svc.authClient.UpdateUser(ctx, uid, update); err != nil {
		svc.logger.Warn("Password update rejected by provider",
			slog.String("uid", uid),
			slog.Any("error", err))

		return domainerrors.ErrWeakPassword.WrapMessage("provider rejected password update")
	}

	return nil
}

// RevokeSessions invalidates every refresh token of the account.
func (svc *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := svc.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// VerifyIDToken validates a session token and resolves the user it belongs to.
func (svc *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*entity.User, error) {
	token, err := svc.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrSessionExpired.WrapMessage("invalid or expired ID token")
	}

	email, _ := token.Claims["email"].(string)

	return &entity.User{UID: token.UID, Email: email}, nil
}

// GetOrCreateUser resolves a provider account by email, creating it when absent.
func (svc *firebaseIdentity) GetOrCreateUser(ctx context.Context, email, displayName string) (*entity.User, error) {
	record, err := svc.authClient.GetUserByEmail(ctx, email)
	if err == nil {
		return &entity.User{UID: record.UID, Email: record.Email}, nil
	}
	if !auth.IsUserNotFound(err) {
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	create := (&auth.UserToCreate{}).Email(email).EmailVerified(true)
	if displayName != "" {
		create = create.DisplayName(displayName)
	}

	record, err = svc.authClient.CreateUser(ctx, create)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider account")
	}

	svc.logger.Info("Created provider account for federated sign-in", slog.String("uid", record.UID))

	return &entity.User{UID: record.UID, Email: record.Email}, nil
}

// CustomToken mints a token the client exchanges for a session.
func (svc *firebaseIdentity) CustomToken(ctx context.Context, uid string) (string, error) {
	token, err := svc.authClient.CustomToken(ctx, uid)
	if err != nil {
		return "", errors.Wrap(err, "failed to mint custom token")
	}

	return token, nil
}
