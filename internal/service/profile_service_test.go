package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devnetwork/devnetwork-service/internal/domain"
	"github.com/devnetwork/devnetwork-service/internal/service"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetWithOwner(ctx context.Context, userID string) (*domain.ProfileWithOwner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileWithOwner), args.Error(1)
}

func (m *MockProfileRepo) List(ctx context.Context) ([]domain.ProfileWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileWithOwner), args.Error(1)
}

func (m *MockProfileRepo) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func storedProfile(userID string) *domain.Profile {
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Profile{
		ID:     "profile-1",
		UserID: userID,
		Status: "Developer",
		Skills: []string{"Go"},
		Experience: []domain.Experience{
			{ID: "exp-1", Title: "Engineer", Company: "Acme", From: from},
			{ID: "exp-2", Title: "Senior Engineer", Company: "Acme", From: from},
		},
		Education: []domain.Education{
			{ID: "edu-1", School: "State U", Degree: "BSc", FieldOfStudy: "CS", From: from},
		},
	}
}

func TestUpsertSplitsSkillsAndNormalizesURLs(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(nil, pgx.ErrNoRows)

	var saved *domain.Profile
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Profile)
	}).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	_, err := svc.Upsert(context.Background(), "user-1", service.ProfileInput{
		Status:  "Developer",
		Skills:  "Go, SQL , ,JavaScript",
		Website: "example.com/me",
		Twitter: "http://twitter.com/jane",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, []string{"Go", "SQL", "JavaScript"}, saved.Skills)
	assert.Equal(t, "https://example.com/me", saved.Website)
	assert.Equal(t, "https://twitter.com/jane", saved.Social.Twitter)
}

func TestUpsertPreservesExperienceAndEducation(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(storedProfile("user-1"), nil)

	var saved *domain.Profile
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Profile)
	}).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	_, err := svc.Upsert(context.Background(), "user-1", service.ProfileInput{
		Status: "Architect",
		Skills: "Go",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Architect", saved.Status)
	assert.Len(t, saved.Experience, 2)
	assert.Len(t, saved.Education, 1)
}

func TestAddExperienceAssignsID(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(storedProfile("user-1"), nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	profile, err := svc.AddExperience(context.Background(), "user-1", service.ExperienceInput{
		Title:   "Staff Engineer",
		Company: "Initech",
		From:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		Current: true,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 3)

	added := profile.Experience[2]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Staff Engineer", added.Title)
	assert.True(t, added.Current)
}

func TestAddExperienceWithoutProfile(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(nil, pgx.ErrNoRows)

	svc := service.NewProfileService(profiles, nil, nil)

	_, err := svc.AddExperience(context.Background(), "user-1", service.ExperienceInput{
		Title:   "Staff Engineer",
		Company: "Initech",
		From:    time.Now(),
	})
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestRemoveExperience(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(storedProfile("user-1"), nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	profile, err := svc.RemoveExperience(context.Background(), "user-1", "exp-1")
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "exp-2", profile.Experience[0].ID)
}

func TestRemoveExperienceUnknownIDIsNoop(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(storedProfile("user-1"), nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	profile, err := svc.RemoveExperience(context.Background(), "user-1", "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, profile.Experience, 2)
}

func TestRemoveEducation(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, "user-1").Return(storedProfile("user-1"), nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := service.NewProfileService(profiles, nil, nil)

	profile, err := svc.RemoveEducation(context.Background(), "user-1", "edu-1")
	require.NoError(t, err)
	assert.Empty(t, profile.Education)
}

func TestGetMineWithoutProfile(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetWithOwner", mock.Anything, "user-1").Return(nil, pgx.ErrNoRows)

	svc := service.NewProfileService(profiles, nil, nil)

	_, err := svc.GetMine(context.Background(), "user-1")
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestDeleteAccountRemovesProfileAndUser(t *testing.T) {
	profiles := new(MockProfileRepo)
	users := new(MockUserRepo)

	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1", Email: "jane@example.com"}, nil)
	profiles.On("Delete", mock.Anything, "user-1").Return(nil)
	users.On("Delete", mock.Anything, "user-1").Return(nil)

	svc := service.NewProfileService(profiles, users, nil)

	require.NoError(t, svc.DeleteAccount(context.Background(), "user-1"))
	profiles.AssertExpectations(t)
	users.AssertExpectations(t)
}
