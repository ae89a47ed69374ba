package usecase

import (
	"context"
	"io"

	"agenda/internal/domain/entity"
)

// SaveProfileInput carries the editable profile fields. Movil must be a
// nine-digit mobile number, matching the form's fixed-length pattern.
type SaveProfileInput struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellido  string `json:"apellido" validate:"required,min=2"`
	CodPostal int    `json:"cod_postal" validate:"required,min=1,max=99999"`
	Ciudad    string `json:"ciudad" validate:"required"`
	Movil     int64  `json:"movil" validate:"required,min=100000000,max=999999999"`
	Email     string `json:"email" validate:"required,email"`
	Pais      string `json:"pais" validate:"required"`
}

// ProfileUsecase defines profile operations. A user has at most one profile;
// whether a save creates or updates is decided by the current stored state.
type ProfileUsecase interface {
	// GetProfile returns the stored profile, or nil when none has been saved yet.
	GetProfile(ctx context.Context, uid string) (*entity.Profile, error)

	// CreateProfile is a guarded create: when a profile already exists it
	// logs and leaves the stored document unmodified.
	CreateProfile(ctx context.Context, uid string, input *SaveProfileInput) error

	// UpdateProfile merges the fields and restamps Updated. Assumes the
	// profile exists.
	UpdateProfile(ctx context.Context, uid string, input *SaveProfileInput) (*entity.Profile, error)

	// SaveProfile decides create-vs-update from the stored state and
	// returns the resulting profile.
	SaveProfile(ctx context.Context, uid string, input *SaveProfileInput) (*entity.Profile, error)

	// SaveAvatar stores a profile picture and records its URL on the profile.
	SaveAvatar(ctx context.Context, uid, filename, contentType string, body io.Reader) (string, error)
}
