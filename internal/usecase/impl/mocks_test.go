package impl

import (
	"context"
	"io"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// --- repository mocks ---

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, uid string, contact *entity.Contact) (string, error) {
	args := m.Called(ctx, uid, contact)

	return args.String(0), args.Error(1)
}

func (m *mockContactRepo) FindAll(ctx context.Context, uid string) ([]entity.Contact, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *mockContactRepo) FindByID(ctx context.Context, uid, id string) (*entity.Contact, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *mockContactRepo) Update(ctx context.Context, uid, id string, contact *entity.Contact) error {
	args := m.Called(ctx, uid, id, contact)

	return args.Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, uid, id string) error {
	args := m.Called(ctx, uid, id)

	return args.Error(0)
}

func (m *mockContactRepo) Watch(ctx context.Context, uid string) (<-chan []entity.Contact, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(<-chan []entity.Contact), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Find(ctx context.Context, uid string) (*entity.Profile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, uid string, profile *entity.Profile) error {
	args := m.Called(ctx, uid, profile)

	return args.Error(0)
}

func (m *mockProfileRepo) Update(ctx context.Context, uid string, profile *entity.Profile) error {
	args := m.Called(ctx, uid, profile)

	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) EnsureExists(ctx context.Context, uid, email string) error {
	args := m.Called(ctx, uid, email)

	return args.Error(0)
}

// --- service mocks ---

type mockIdentityService struct {
	mock.Mock
}

func (m *mockIdentityService) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockIdentityService) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockIdentityService) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *mockIdentityService) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	args := m.Called(ctx, uid, newPassword)

	return args.Error(0)
}

func (m *mockIdentityService) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)

	return args.Error(0)
}

func (m *mockIdentityService) VerifyIDToken(ctx context.Context, idToken string) (*entity.User, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockIdentityService) GetOrCreateUser(ctx context.Context, email, displayName string) (*entity.User, error) {
	args := m.Called(ctx, email, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockIdentityService) CustomToken(ctx context.Context, uid string) (string, error) {
	args := m.Called(ctx, uid)

	return args.String(0), args.Error(1)
}

type mockOAuthService struct {
	mock.Mock
}

func (m *mockOAuthService) VerifyGoogleIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.GoogleUser), args.Error(1)
}

type mockAvatarStore struct {
	mock.Mock
}

func (m *mockAvatarStore) Save(ctx context.Context, uid, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, uid, filename, contentType, body)

	return args.String(0), args.Error(1)
}
