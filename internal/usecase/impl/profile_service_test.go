package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(repo *mockProfileRepo, store *mockAvatarStore, now func() time.Time) *profileService {
	return &profileService{
		profileRepo: repo,
		avatarStore: store,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         now,
	}
}

func fixtureProfileInput() *usecase.SaveProfileInput {
	return &usecase.SaveProfileInput{
		Nombre:    "Ana",
		Apellido:  "García",
		CodPostal: 28001,
		Ciudad:    "Madrid",
		Movil:     622333444,
		Email:     "ana@example.com",
		Pais:      "España",
	}
}

func TestGetProfile_NilWhenAbsent(t *testing.T) {
	repo := new(mockProfileRepo)
	srv := newTestProfileService(repo, new(mockAvatarStore), time.Now)
	repo.On("Find", mock.Anything, testUID).Return(nil, repository.ErrProfileNotFound)

	profile, err := srv.GetProfile(context.Background(), testUID)

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestCreateProfile_GuardedCreateIsNoop(t *testing.T) {
	repo := new(mockProfileRepo)
	srv := newTestProfileService(repo, new(mockAvatarStore), time.Now)
	repo.On("Create", mock.Anything, testUID, mock.Anything).Return(repository.ErrProfileExists)

	err := srv.CreateProfile(context.Background(), testUID, fixtureProfileInput())

	require.NoError(t, err, "an existing profile must not fail the create")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProfile_StampsBothTimestamps(t *testing.T) {
	repo := new(mockProfileRepo)
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestProfileService(repo, new(mockAvatarStore), func() time.Time { return instant })

	repo.On("Create", mock.Anything, testUID, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.Created.Equal(instant) && p.Updated.Equal(instant)
	})).Return(nil)

	err := srv.CreateProfile(context.Background(), testUID, fixtureProfileInput())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSaveProfile_CreatesWhenAbsent(t *testing.T) {
	repo := new(mockProfileRepo)
	srv := newTestProfileService(repo, new(mockAvatarStore), time.Now)

	stored := &entity.Profile{Nombre: "Ana", Created: time.Now()}
	repo.On("Find", mock.Anything, testUID).Return(nil, repository.ErrProfileNotFound).Once()
	repo.On("Create", mock.Anything, testUID, mock.Anything).Return(nil)
	repo.On("Find", mock.Anything, testUID).Return(stored, nil)

	profile, err := srv.SaveProfile(context.Background(), testUID, fixtureProfileInput())

	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Nombre)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveProfile_UpdatesWhenPresent(t *testing.T) {
	repo := new(mockProfileRepo)
	instant := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	srv := newTestProfileService(repo, new(mockAvatarStore), func() time.Time { return instant })

	stored := &entity.Profile{Nombre: "Ana", Created: instant.Add(-24 * time.Hour)}
	repo.On("Find", mock.Anything, testUID).Return(stored, nil)
	repo.On("Update", mock.Anything, testUID, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.Updated.Equal(instant) && p.Created.IsZero()
	})).Return(nil)

	_, err := srv.SaveProfile(context.Background(), testUID, fixtureProfileInput())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveAvatar_RecordsURLOnProfile(t *testing.T) {
	repo := new(mockProfileRepo)
	store := new(mockAvatarStore)
	srv := newTestProfileService(repo, store, time.Now)

	stored := &entity.Profile{Nombre: "Ana", Created: time.Now()}
	repo.On("Find", mock.Anything, testUID).Return(stored, nil)
	store.On("Save", mock.Anything, testUID, "me.png", "image/png", mock.Anything).
		Return("https://cdn.example.com/uid-1/avatar.png", nil)
	repo.On("Update", mock.Anything, testUID, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.AvatarURL == "https://cdn.example.com/uid-1/avatar.png"
	})).Return(nil)

	url, err := srv.SaveAvatar(context.Background(), testUID, "me.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uid-1/avatar.png", url)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}
