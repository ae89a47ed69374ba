package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/delivery/http/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for contact list handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the new contact request.
func (h *ContactHandler) Create(c echo.Context) error {
	var input *usecase.NewContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del contacto no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	uid := deliverycontext.GetUserUID(c.Request().Context())
	contact, err := h.uc.NewContact(c.Request().Context(), uid, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contact, "Contacto creado correctamente")
}

// List returns one page of the filtered, sorted contact list.
func (h *ContactHandler) List(c echo.Context) error {
	var query usecase.ListContactsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Parámetros de búsqueda no válidos")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	uid := deliverycontext.GetUserUID(c.Request().Context())
	output, err := h.uc.ListContacts(c.Request().Context(), uid, &query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Stream pushes the live contact list over Server-Sent Events. Each remote
// change emits one event with the full ordered list, the same shape the
// polling endpoint returns.
func (h *ContactHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	uid := deliverycontext.GetUserUID(ctx)

	updates, err := h.uc.WatchContacts(ctx, uid)
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case contacts, ok := <-updates:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(contacts)
			if err != nil {
				return errors.Wrap(err, "failed to encode contact list event")
			}

			if _, err := fmt.Fprintf(res, "event: contacts\ndata: %s\n\n", payload); err != nil {
				return errors.Wrap(err, "failed to write contact list event")
			}
			res.Flush()
		}
	}
}

// GetByID returns a single contact.
func (h *ContactHandler) GetByID(c echo.Context) error {
	uid := deliverycontext.GetUserUID(c.Request().Context())

	contact, err := h.uc.GetContactByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "")
}

// Update handles the contact edit request.
func (h *ContactHandler) Update(c echo.Context) error {
	var input *usecase.UpdateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del contacto no válidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	uid := deliverycontext.GetUserUID(c.Request().Context())
	contact, err := h.uc.UpdateContact(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Contacto editado correctamente")
}

// Delete removes a contact.
func (h *ContactHandler) Delete(c echo.Context) error {
	uid := deliverycontext.GetUserUID(c.Request().Context())

	if err := h.uc.DeleteContact(c.Request().Context(), uid, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contacto eliminado correctamente")
}
