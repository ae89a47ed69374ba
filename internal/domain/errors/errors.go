package errors

import (
	"net/http"

	"agenda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo electrónico o contraseña incorrectos",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"La contraseña no cumple los requisitos de seguridad",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"No hay usuario autenticado",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"La sesión ha caducado, inicia sesión de nuevo",
		"",
	)

	// Google sign-in errors
	ErrGoogleTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"GOOGLE_TOKEN_INVALID",
		"No se pudo completar el inicio de sesión con Google",
		"",
	)

	// Password reset errors, one per translated provider code
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"El correo electrónico no es válido",
		"",
	)

	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"No existe ninguna cuenta con ese correo electrónico",
		"",
	)

	ErrNetworkFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_FAILURE",
		"Error de red, inténtalo de nuevo más tarde",
		"",
	)

	ErrAuthUnknown = NewBaseError(
		http.StatusInternalServerError,
		"AUTH_UNKNOWN",
		"Ha ocurrido un error, inténtalo de nuevo",
		"",
	)

	// Contact-related errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"No se encontró el contacto",
		"",
	)

	ErrContactSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_SAVE_FAILED",
		"No se pudo guardar el contacto",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se encontró el perfil del usuario",
		"",
	)

	ErrProfileSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_SAVE_FAILED",
		"No se pudo guardar el perfil",
		"",
	)

	ErrAvatarTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"AVATAR_TOO_LARGE",
		"La imagen supera el tamaño máximo permitido",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos del formulario no son válidos",
		"",
	)
)
