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

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the stored profile. A user who has not saved one yet gets a
// successful response with null data, so the form can start out empty.
func (h *ProfileHandler) Get(c echo.Context) error {
	uid := deliverycontext.GetUserUID(c.Request().Context())

	profile, err := h.uc.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Create handles the explicit profile creation request. Posting twice leaves
// the first profile untouched.
func (h *ProfileHandler) Create(c echo.Context) error {
	var input *usecase.SaveProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del perfil no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	uid := deliverycontext.GetUserUID(ctx)
	if err := h.uc.CreateProfile(ctx, uid, input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.GetProfile(ctx, uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Perfil creado correctamente")
}

// Save handles the profile form submission, creating or updating as needed.
func (h *ProfileHandler) Save(c echo.Context) error {
	var input *usecase.SaveProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del perfil no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	uid := deliverycontext.GetUserUID(c.Request().Context())
	profile, err := h.uc.SaveProfile(c.Request().Context(), uid, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Perfil guardado correctamente")
}

// SaveAvatar stores the uploaded profile picture.
func (h *ProfileHandler) SaveAvatar(c echo.Context) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Falta el archivo de imagen")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	uid := deliverycontext.GetUserUID(c.Request().Context())
	url, err := h.uc.SaveAvatar(
		c.Request().Context(),
		uid,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		file,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"avatarUrl": url}, "Imagen de perfil actualizada")
}
