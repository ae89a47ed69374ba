package repository

import (
	"context"
	"errors"

	"agenda/internal/domain/entity"
)

// ErrProfileNotFound is returned when the user has not saved a profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists is returned by Create when a profile is already present.
var ErrProfileExists = errors.New("profile already exists")

// ProfileRepository manages the single uid-keyed profile document of a user.
type ProfileRepository interface {
	// Find retrieves the user's profile, or ErrProfileNotFound when none has
	// been saved. A bare user document without profile fields counts as absent.
	Find(ctx context.Context, uid string) (*entity.Profile, error)

	// Create writes the profile only if none exists, atomically. Returns
	// ErrProfileExists otherwise, leaving the stored document untouched.
	Create(ctx context.Context, uid string, profile *entity.Profile) error

	// Update merges the profile fields into the existing document. No
	// existence check is performed; the Created stamp is never touched.
	Update(ctx context.Context, uid string, profile *entity.Profile) error
}
