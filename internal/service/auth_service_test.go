package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devnetwork/devnetwork-service/internal/auth"
	"github.com/devnetwork/devnetwork-service/internal/config"
	"github.com/devnetwork/devnetwork-service/internal/domain"
	"github.com/devnetwork/devnetwork-service/internal/service"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenTTLHours: 1,
		BcryptCost:          bcrypt.MinCost,
	}
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Name:         "Jane Dev",
		Email:        "jane@example.com",
		PasswordHash: hash,
	}
}

func TestLoginUnknownAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(hashedUser(t, "correct-pass"), nil)

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "jane@example.com", "wrong-pass")

	assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginStoreFailureIsNotInvalidCredentials(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, errors.New("connection refused"))

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	_, _, err := svc.Login(context.Background(), "jane@example.com", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginSuccessTokenCarriesUserID(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(hashedUser(t, "correct-pass"), nil)

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	token, _, err := svc.Login(context.Background(), "jane@example.com", "correct-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(hashedUser(t, "correct-pass"), nil)

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	_, _, _, err := svc.Register(context.Background(), "Jane Dev", "jane@example.com", "some-pass")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterSuccess(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, pgx.ErrNoRows)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		user.ID = "user-new"
	}).Return(nil)

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	user, token, _, err := svc.Register(context.Background(), "New Dev", "new@example.com", "some-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "some-pass", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "some-pass"))
	assert.True(t, strings.HasPrefix(user.Avatar, "https://www.gravatar.com/avatar/"))

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-new", claims.UserID)

	repo.AssertExpectations(t)
}

func TestCurrentUserGone(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("GetByID", mock.Anything, "user-1").Return(nil, pgx.ErrNoRows)

	svc := service.NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.CurrentUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
