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

// profileRepository implements repository.ProfileRepository on the uid-keyed
// users/{uid} document. The document doubles as the anchor for the contact
// subcollection, so it may exist before any profile fields do; the Created
// stamp marks a saved profile.
type profileRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (repo *profileRepository) userDoc(uid string) *firestore.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(uid)
}

// Find retrieves the user's profile, or repository.ErrProfileNotFound when
// the document is absent or holds no profile fields yet.
func (repo *profileRepository) Find(ctx context.Context, uid string) (*entity.Profile, error) {
	snap, err := repo.userDoc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var profile entity.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile for %s", uid)
	}

	if profile.Created.IsZero() {
		// Bare user document written on first login, no profile saved yet.
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

// profileWriteData flattens the profile into a map. MergeAll writes accept
// only map data, so the merge into a bare user document must not pass the
// struct itself.
func profileWriteData(profile *entity.Profile) map[string]any {
	data := map[string]any{
		"nombre":     profile.Nombre,
		"apellido":   profile.Apellido,
		"cod_postal": profile.CodPostal,
		"ciudad":     profile.Ciudad,
		"movil":      profile.Movil,
		"email":      profile.Email,
		"pais":       profile.Pais,
		"created":    profile.Created,
		"updated":    profile.Updated,
	}
	if profile.AvatarURL != "" {
		data["avatarUrl"] = profile.AvatarURL
	}

	return data
}

// Create writes the profile inside a transaction so the existence check and
// the write cannot race a concurrent creator.
func (repo *profileRepository) Create(ctx context.Context, uid string, profile *entity.Profile) error {
	docRef := repo.userDoc(uid)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return errors.Wrap(err, "failed to read profile document")
		}

		if snap != nil && snap.Exists() {
			var existing entity.Profile
			if err := snap.DataTo(&existing); err != nil {
				return errors.Wrapf(err, "failed to decode profile for %s", uid)
			}
			if !existing.Created.IsZero() {
				return repository.ErrProfileExists
			}
		}

		return tx.Set(docRef, profileWriteData(profile), firestore.MergeAll)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return repository.ErrProfileExists
		}

		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

// Update merges the profile fields and the Updated stamp. The created field
// is deliberately absent from the write.
func (repo *profileRepository) Update(ctx context.Context, uid string, profile *entity.Profile) error {
	updates := []firestore.Update{
		{Path: "nombre", Value: profile.Nombre},
		{Path: "apellido", Value: profile.Apellido},
		{Path: "cod_postal", Value: profile.CodPostal},
		{Path: "ciudad", Value: profile.Ciudad},
		{Path: "movil", Value: profile.Movil},
		{Path: "email", Value: profile.Email},
		{Path: "pais", Value: profile.Pais},
		{Path: "updated", Value: profile.Updated},
	}
	if profile.AvatarURL != "" {
		updates = append(updates, firestore.Update{Path: "avatarUrl", Value: profile.AvatarURL})
	}

	if _, err := repo.userDoc(uid).Update(ctx, updates); err != nil {
		return errors.Wrap(err, "failed to update profile document")
	}

	return nil
}
