package firestoredb

import (
	"context"
	"log/slog"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// contactRepository implements repository.ContactRepository on the
// users/{uid}/contacts subcollection.
type contactRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewContactRepository is the constructor for contactRepository.
// It returns the repository as a repository.ContactRepository interface, adhering to dependency inversion.
func NewContactRepository(client *firestore.Client, logger *slog.Logger) repository.ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (repo *contactRepository) contacts(uid string) *firestore.CollectionRef {
	return repo.client.Collection(usersCollection).Doc(uid).Collection(contactsCollection)
}

// Create persists a new contact and returns the backend-assigned document ID.
func (repo *contactRepository) Create(ctx context.Context, uid string, contact *entity.Contact) (string, error) {
	docRef := repo.contacts(uid).NewDoc()
	if _, err := docRef.Create(ctx, contact); err != nil {
		return "", errors.Wrap(err, "failed to create contact document")
	}

	return docRef.ID, nil
}

// FindAll retrieves the user's contacts ordered by creation time descending.
func (repo *contactRepository) FindAll(ctx context.Context, uid string) ([]entity.Contact, error) {
	query := repo.contacts(uid).OrderBy("created", firestore.Desc)

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query contacts")
	}

	contacts := make([]entity.Contact, 0, len(snaps))
	for _, snap := range snaps {
		var contact entity.Contact
		if err := snap.DataTo(&contact); err != nil {
			return nil, errors.Wrapf(err, "failed to decode contact %s", snap.Ref.ID)
		}
		contact.ID = snap.Ref.ID
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

// FindByID retrieves a single contact, or repository.ErrContactNotFound when absent.
func (repo *contactRepository) FindByID(ctx context.Context, uid, id string) (*entity.Contact, error) {
	snap, err := repo.contacts(uid).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to get contact document")
	}

	var contact entity.Contact
	if err := snap.DataTo(&contact); err != nil {
		return nil, errors.Wrapf(err, "failed to decode contact %s", id)
	}
	contact.ID = snap.Ref.ID

	return &contact, nil
}

// Update merges the editable fields and the Updated stamp into an existing
// document. The created field is deliberately absent from the write.
func (repo *contactRepository) Update(ctx context.Context, uid, id string, contact *entity.Contact) error {
	updates := []firestore.Update{
		{Path: "nombre", Value: contact.Nombre},
		{Path: "telefono", Value: contact.Telefono},
		{Path: "email", Value: contact.Email},
		{Path: "action", Value: contact.Action},
		{Path: "updated", Value: contact.Updated},
	}

	if _, err := repo.contacts(uid).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrContactNotFound
		}

		return errors.Wrap(err, "failed to update contact document")
	}

	return nil
}

// Delete removes the contact document. Firestore deletes are idempotent, so
// an absent id is not an error.
func (repo *contactRepository) Delete(ctx context.Context, uid, id string) error {
	if _, err := repo.contacts(uid).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete contact document")
	}

	return nil
}

// Watch streams the full ordered contact list on every remote change until
// ctx is cancelled.
func (repo *contactRepository) Watch(ctx context.Context, uid string) (<-chan []entity.Contact, error) {
	query := repo.contacts(uid).OrderBy("created", firestore.Desc)
	snapshots := query.Snapshots(ctx)

	out := make(chan []entity.Contact, 1)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("Contact snapshot stream ended",
						slog.String("uid", uid),
						slog.Any("error", err))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				repo.logger.Error("Failed to read contact snapshot",
					slog.String("uid", uid),
					slog.Any("error", err))

				return
			}

			contacts := make([]entity.Contact, 0, len(docs))
			for _, docSnap := range docs {
				var contact entity.Contact
				if err := docSnap.DataTo(&contact); err != nil {
					repo.logger.Warn("Skipping undecodable contact",
						slog.String("uid", uid),
						slog.String("id", docSnap.Ref.ID),
						slog.Any("error", err))

					continue
				}
				contact.ID = docSnap.Ref.ID
				contacts = append(contacts, contact)
			}

			select {
			case out <- contacts:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
