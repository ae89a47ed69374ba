package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	avatarStore service.AvatarStore
	logger      *slog.Logger
	now         func() time.Time
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	AvatarStore service.AvatarStore
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		avatarStore: params.AvatarStore,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the stored profile, or nil when none has been saved.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.Find(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// CreateProfile performs the guarded create: when a profile already exists
// the stored document stays untouched and the attempt is only logged.
func (srv *profileService) CreateProfile(ctx context.Context, uid string, input *usecase.SaveProfileInput) error {
	if err := requireUser(uid); err != nil {
		return err
	}

	now := srv.now()
	profile := srv.toEntity(input)
	profile.Created = now
	profile.Updated = now

	if err := srv.profileRepo.Create(ctx, uid, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			srv.log(ctx).Warn("Profile already exists, create skipped", slog.String("uid", uid))

			return nil
		}

		return errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("uid", uid))

	return nil
}

// UpdateProfile merges the fields and restamps Updated. The merge path does
// not check existence.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.SaveProfileInput) (*entity.Profile, error) {
	if err := requireUser(uid); err != nil {
		return nil, err
	}

	profile := srv.toEntity(input)
	profile.Updated = srv.now()

	if err := srv.profileRepo.Update(ctx, uid, profile); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.String("uid", uid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	stored, err := srv.profileRepo.Find(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload profile after update")
	}

	return stored, nil
}

// SaveProfile decides create-vs-update from the stored state. The create
// branch is transactional, so a concurrent save cannot produce two creates.
func (srv *profileService) SaveProfile(ctx context.Context, uid string, input *usecase.SaveProfileInput) (*entity.Profile, error) {
	existing, err := srv.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if err := srv.CreateProfile(ctx, uid, input); err != nil {
			return nil, err
		}

		stored, err := srv.profileRepo.Find(ctx, uid)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload profile after create")
		}

		return stored, nil
	}

	return srv.UpdateProfile(ctx, uid, input)
}

// SaveAvatar stores the picture and records its URL on the existing profile.
func (srv *profileService) SaveAvatar(ctx context.Context, uid, filename, contentType string, body io.Reader) (string, error) {
	if err := requireUser(uid); err != nil {
		return "", err
	}

	current, err := srv.profileRepo.Find(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", domainerrors.ErrProfileNotFound
		}

		return "", errors.Wrap(err, "failed to load profile for avatar")
	}

	url, err := srv.avatarStore.Save(ctx, uid, filename, contentType, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to store avatar")
	}

	current.AvatarURL = url
	current.Updated = srv.now()
	if err := srv.profileRepo.Update(ctx, uid, current); err != nil {
		return "", errors.Wrap(err, "failed to record avatar on profile")
	}

	srv.log(ctx).Info("Avatar updated", slog.String("uid", uid))

	return url, nil
}

func (srv *profileService) toEntity(input *usecase.SaveProfileInput) *entity.Profile {
	return &entity.Profile{
		Nombre:    input.Nombre,
		Apellido:  input.Apellido,
		CodPostal: input.CodPostal,
		Ciudad:    input.Ciudad,
		Movil:     input.Movil,
		Email:     input.Email,
		Pais:      input.Pais,
	}
}
