package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"

	"github.com/pkg/errors"
)

const identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Provider error codes surfaced by the Identity Toolkit REST API. Only this
// fixed set is translated; everything else falls back to a generic message.
const (
	codeEmailExists       = "EMAIL_EXISTS"
	codeWeakPassword      = "WEAK_PASSWORD"
	codeInvalidEmail      = "INVALID_EMAIL"
	codeEmailNotFound     = "EMAIL_NOT_FOUND"
	codeInvalidPassword   = "INVALID_PASSWORD"
	codeInvalidLoginCreds = "INVALID_LOGIN_CREDENTIALS"
	codeUserDisabled      = "USER_DISABLED"
	codeTooManyAttempts   = "TOO_MANY_ATTEMPTS_TRY_LATER"
)

const (
	oobTypePasswordReset = "PASSWORD_RESET"

	restRequestTimeout     = 10 * time.Second
	defaultSessionLifetime = time.Hour
)

// restClient talks to the Identity Toolkit endpoints that require the web
// API key: password sign-up/sign-in and out-of-band email dispatch.
type restClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newRESTClient(apiKey string, httpClient *http.Client, logger *slog.Logger) *restClient {
	return &restClient{
		apiKey:     apiKey,
		baseURL:    identityToolkitBaseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

type credentialRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type sessionResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // Seconds, as a decimal string.
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (rc *restClient) signUp(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp sessionResponse
	err := rc.post(ctx, "accounts:signUp", credentialRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, mapCredentialError(err, false)
	}

	return toSession(&resp), nil
}

func (rc *restClient) signInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp sessionResponse
	err := rc.post(ctx, "accounts:signInWithPassword", credentialRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, mapCredentialError(err, true)
	}

	return toSession(&resp), nil
}

func (rc *restClient) sendPasswordReset(ctx context.Context, email string) error {
	err := rc.post(ctx, "accounts:sendOobCode", oobCodeRequest{
		RequestType: oobTypePasswordReset,
		Email:       email,
	}, &struct{}{})
	if err != nil {
		return mapResetError(err)
	}

	return nil
}

// providerError carries the raw code returned by the provider so flow-specific
// mapping can happen at the call site.
type providerError struct {
	code string
}

func (e *providerError) Error() string {
	return "identity provider rejected request: " + e.code
}

func (rc *restClient) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}

	reqCtx, cancel := context.WithTimeout(ctx, restRequestTimeout)
	defer cancel()

	url := rc.baseURL + "/" + endpoint + "?key=" + rc.apiKey
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rc.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return errors.Wrapf(err, "identity provider returned status %d", resp.StatusCode)
		}

		code := normalizeProviderCode(errResp.Error.Message)
		rc.logger.Debug("Identity provider rejected request",
			slog.String("endpoint", endpoint),
			slog.String("code", code))

		return &providerError{code: code}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode identity provider response")
	}

	return nil
}

// normalizeProviderCode strips the detail the provider sometimes appends,
// e.g. "WEAK_PASSWORD : Password should be at least 6 characters".
func normalizeProviderCode(message string) string {
	code, _, _ := strings.Cut(message, " ")

	return strings.TrimSpace(code)
}

// mapCredentialError converts a sign-up/sign-in failure into a domain error.
func mapCredentialError(err error, signIn bool) error {
	var provErr *providerError
	if !errors.As(err, &provErr) {
		return errors.Wrap(err, "credential request failed")
	}

	switch provErr.code {
	case codeEmailExists:
		return domainerrors.ErrEmailAlreadyExists
	case codeWeakPassword:
		return domainerrors.ErrWeakPassword
	case codeInvalidEmail:
		return domainerrors.ErrInvalidEmail
	case codeInvalidPassword, codeInvalidLoginCreds, codeUserDisabled:
		return domainerrors.ErrInvalidCredentials
	case codeEmailNotFound:
		if signIn {
			// Do not reveal whether the address is registered.
			return domainerrors.ErrInvalidCredentials
		}

		return domainerrors.ErrEmailNotFound
	case codeTooManyAttempts:
		return domainerrors.ErrInvalidCredentials.WithDetails("too many attempts, try again later")
	default:
		return domainerrors.ErrAuthUnknown.WithDetails(provErr.code)
	}
}

// mapResetError converts a reset-mail failure into a domain error with a
// human-readable message. Only the known codes are translated.
func mapResetError(err error) error {
	var provErr *providerError
	if !errors.As(err, &provErr) {
		// Transport-level failure, surfaced as a network error.
		return domainerrors.ErrNetworkFailure.WrapMessage("failed to send reset email")
	}

	switch provErr.code {
	case codeInvalidEmail:
		return domainerrors.ErrInvalidEmail
	case codeEmailNotFound:
		return domainerrors.ErrEmailNotFound
	default:
		return domainerrors.ErrAuthUnknown.WithDetails(provErr.code)
	}
}

func toSession(resp *sessionResponse) *entity.Session {
	lifetime := defaultSessionLifetime
	if secs, err := strconv.Atoi(resp.ExpiresIn); err == nil {
		lifetime = time.Duration(secs) * time.Second
	}

	return &entity.Session{
		UID:          resp.LocalID,
		Email:        resp.Email,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(lifetime),
	}
}
