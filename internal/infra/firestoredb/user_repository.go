package firestoredb

import (
	"context"
	"log/slog"

	"agenda/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements repository.UserRepository.
type userRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// EnsureExists creates the users/{uid} document when absent. The conditional
// create never overwrites an existing document, so profile fields survive
// repeated logins.
func (repo *userRepository) EnsureExists(ctx context.Context, uid, email string) error {
	docRef := repo.client.Collection(usersCollection).Doc(uid)

	_, err := docRef.Create(ctx, map[string]any{
		"email":     email,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}

		return errors.Wrapf(err, "failed to create user document %s", uid)
	}

	repo.logger.Debug("Created user document", slog.String("uid", uid))

	return nil
}
