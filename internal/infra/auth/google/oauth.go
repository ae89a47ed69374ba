// Package google verifies Google ID tokens for the federated sign-in flow.
package google

import (
	"context"
	"log/slog"

	"agenda/config"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// oauthService implements service.OAuthService for Google.
type oauthService struct {
	clientID  string
	validator *idtoken.Validator
	logger    *slog.Logger
}

// NewOAuthService creates the Google ID token verifier. The validator checks
// the token signature against Google's published certificates.
func NewOAuthService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ID token validator")
	}

	return &oauthService{
		clientID:  cfg.GoogleOAuth.ClientID,
		validator: validator,
		logger:    logger,
	}, nil
}

// VerifyGoogleIDToken verifies the token signature, audience and expiry, then
// the issuer and email claims. This gates session minting, so nothing short
// of a Google-signed token for our client id passes.
func (svc *oauthService) VerifyGoogleIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	payload, err := svc.validator.Validate(ctx, idToken, svc.clientID)
	if err != nil {
		svc.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrGoogleTokenInvalid.WrapMessage("signature or claim validation failed")
	}

	if err := verifyPayload(payload); err != nil {
		svc.logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, domainerrors.ErrGoogleTokenInvalid.WrapMessage(err.Error())
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &service.GoogleUser{
		Sub:           payload.Subject,
		Email:         email,
		Name:          name,
		Picture:       picture,
		EmailVerified: true,
	}, nil
}

// verifyPayload covers the claims the validator leaves to the caller.
func verifyPayload(payload *idtoken.Payload) error {
	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return errors.New("email missing or unverified")
	}

	return nil
}
