// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo     repository.ContactRepository
	defaultPageSize int
	logger          *slog.Logger
	now             func() time.Time
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	defaultPageSize := 5
	if params.Config != nil && params.Config.Contacts != nil {
		defaultPageSize = params.Config.Contacts.DefaultPageSize
	}

	return &contactService{
		contactRepo:     params.ContactRepo,
		defaultPageSize: defaultPageSize,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireUser(uid string) error {
	if uid == "" {
		return domainerrors.ErrNotAuthenticated
	}

	return nil
}

// NewContact stamps both timestamps to the same instant and inserts the contact.
func (srv *contactService) NewContact(ctx context.Context, uid string, input *usecase.NewContactInput) (*entity.Contact, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	now := srv.now()
	contact := &entity.Contact{
		Nombre:   input.Nombre,
		Telefono: input.Telefono,
		Email:    input.Email,
		Action:   input.Action,
		Created:  now,
		Updated:  now,
	}

	id, err := srv.contactRepo.Create(ctx, uid, contact)
	if err != nil {
		srv.log(ctx).Error("Failed to create contact", slog.String("uid", uid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create contact")
	}
	contact.ID = id

	srv.log(ctx).Debug("Contact created", slog.String("uid", uid), slog.String("id", id))

	return contact, nil
}

// ListContacts fetches the ordered list and applies the grid's view
// transforms: filter, then sort, then window.
func (srv *contactService) ListContacts(ctx context.Context, uid string, query *usecase.ListContactsQuery) (*usecase.ContactListOutput, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}
	if query == nil {
		query = &usecase.ListContactsQuery{}
	}

	contacts, err := srv.contactRepo.FindAll(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	filtered := filterContacts(contacts, query.Filter)
	sorted := sortContacts(filtered, query.SortBy, query.SortDir)

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}

	return &usecase.ContactListOutput{
		Contacts: paginateContacts(sorted, page, pageSize),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// WatchContacts opens a live stream of the user's contact list.
func (srv *contactService) WatchContacts(ctx context.Context, uid string) (<-chan []entity.Contact, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	return srv.contactRepo.Watch(ctx, uid)
}

// GetContactByID retrieves one contact.
func (srv *contactService) GetContactByID(ctx context.Context, uid, id string) (*entity.Contact, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	contact, err := srv.contactRepo.FindByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return contact, nil
}

// UpdateContact merges the editable fields and restamps Updated. Created is
// never touched, so it survives every edit.
func (srv *contactService) UpdateContact(ctx context.Context, uid, id string, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		ID:       id,
		Nombre:   input.Nombre,
		Telefono: input.Telefono,
		Email:    input.Email,
		Action:   input.Action,
		Updated:  srv.now(),
	}

	if err := srv.contactRepo.Update(ctx, uid, id, contact); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}
		srv.log(ctx).Error("Failed to update contact",
			slog.String("uid", uid),
			slog.String("id", id),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update contact")
	}

	// Reload so the response carries the stored state, Created included; the
	// merge write deliberately leaves that field alone.
	stored, err := srv.contactRepo.FindByID(ctx, uid, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload contact after update")
	}

	return stored, nil
}

// DeleteContact removes the contact. Deleting an absent id is a no-op.
func (srv *contactService) DeleteContact(ctx context.Context, uid, id string) error {
	if err := requireUser(uid); err != nil {
		return err
	}

	if err := srv.contactRepo.Delete(ctx, uid, id); err != nil {
		return errors.Wrap(err, "failed to delete contact")
	}

	srv.log(ctx).Debug("Contact deleted", slog.String("uid", uid), slog.String("id", id))

	return nil
}
