package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	getUserFn         func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn      func(ctx context.Context, update models.UserUpdate) (models.User, error)
	deleteUserFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, update)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// hashedFixture returns a bcrypt hash for the given plaintext.
func hashedFixture(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthenticate_Success(t *testing.T) {
	const password = "secretpassword"
	stored := models.User{
		ID:       1,
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: hashedFixture(t, password),
	}

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, stored.Email, email)
			return stored, nil
		},
	}

	svc := NewAuthService(repo, logger.Nop())
	got, err := svc.Authenticate(context.Background(), stored.Email, password)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	stored := models.User{
		ID:       1,
		Email:    "ivan@example.com",
		Password: hashedFixture(t, "secretpassword"),
	}

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}

	svc := NewAuthService(repo, logger.Nop())
	_, err := svc.Authenticate(context.Background(), stored.Email, "not-the-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := NewAuthService(repo, logger.Nop())
	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")

	// a lookup miss is indistinguishable from a wrong password
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_EmptyFields(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, logger.Nop())

	_, err := svc.Authenticate(context.Background(), "", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "ivan@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_RepositoryFailure(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	svc := NewAuthService(repo, logger.Nop())
	_, err := svc.Authenticate(context.Background(), "ivan@example.com", "secretpassword")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
