package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/delivery/http/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Usuario registrado correctamente")
}

// SignIn handles the email/password sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Sesión iniciada correctamente")
}

// GoogleSignIn handles the federated Google sign-in request.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var input *usecase.GoogleSignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.SignInWithGoogle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Sesión iniciada con Google")
}

// Logout revokes every session of the authenticated user.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid := deliverycontext.GetUserUID(c.Request().Context())

	if err := h.uc.Logout(c.Request().Context(), uid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada correctamente")
}

// ChangePassword replaces the authenticated user's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	uid := deliverycontext.GetUserUID(c.Request().Context())
	if err := h.uc.ChangePassword(c.Request().Context(), uid, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada correctamente")
}

// ResetPassword dispatches a password reset email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos no válidos")
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Te hemos enviado un correo para restablecer tu contraseña")
}
