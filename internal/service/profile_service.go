package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devnetwork/devnetwork-service/internal/domain"
	"github.com/devnetwork/devnetwork-service/internal/events"
	"github.com/devnetwork/devnetwork-service/internal/repository"
	"github.com/devnetwork/devnetwork-service/pkg/util"
)

// ErrProfileNotFound indicates the user has no profile document.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileInput carries the upsert payload for a profile.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Instagram      string
	Linkedin       string
	Facebook       string
}

// ExperienceInput carries one work history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries one education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService manages developer profile documents and their embedded
// experience/education lists.
type ProfileService struct {
	profiles   repository.ProfileRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewProfileService builds the service.
func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, dispatcher: dispatcher}
}

// GetMine returns the caller's profile with owner fields attached.
func (s *ProfileService) GetMine(ctx context.Context, userID string) (*domain.ProfileWithOwner, error) {
	profile, err := s.profiles.GetWithOwner(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Upsert creates or replaces the caller's profile. Experience and education
// lists survive an upsert untouched; only the top-level fields are replaced.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input ProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:         userID,
		Company:        input.Company,
		Website:        util.NormalizeURL(input.Website),
		Location:       input.Location,
		Status:         input.Status,
		Skills:         splitSkills(input.Skills),
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Social: domain.SocialLinks{
			Youtube:   util.NormalizeURL(input.Youtube),
			Twitter:   util.NormalizeURL(input.Twitter),
			Instagram: util.NormalizeURL(input.Instagram),
			Linkedin:  util.NormalizeURL(input.Linkedin),
			Facebook:  util.NormalizeURL(input.Facebook),
		},
	}

	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if existing != nil {
		profile.Experience = existing.Experience
		profile.Education = existing.Education
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.publish(ctx, events.EventProfileUpdated, userID, events.ProfileUpdatedPayload{
		Status: profile.Status,
		Skills: len(profile.Skills),
	})
	return profile, nil
}

// List returns every profile with owner name and avatar, newest first.
func (s *ProfileService) List(ctx context.Context) ([]domain.ProfileWithOwner, error) {
	return s.profiles.List(ctx)
}

// GetByUser returns the public profile for one user.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the caller's profile and account.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := s.profiles.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("delete user: %w", err)
	}

	email := ""
	if user != nil {
		email = user.Email
	}
	s.publish(ctx, events.EventAccountDeleted, userID, events.AccountDeletedPayload{Email: email})
	return nil
}

// AddExperience appends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, input ExperienceInput) (*domain.Profile, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Experience = append(profile.Experience, domain.Experience{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})
	return s.save(ctx, profile)
}

// RemoveExperience deletes the entry with the given id. Removing an unknown
// id leaves the list unchanged and still succeeds.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Experience[:0]
	for _, entry := range profile.Experience {
		if entry.ID != experienceID {
			kept = append(kept, entry)
		}
	}
	profile.Experience = kept
	return s.save(ctx, profile)
}

// AddEducation appends an education entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, input EducationInput) (*domain.Profile, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Education = append(profile.Education, domain.Education{
		ID:           uuid.NewString(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})
	return s.save(ctx, profile)
}

// RemoveEducation deletes the entry with the given id, tolerating unknown ids.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := profile.Education[:0]
	for _, entry := range profile.Education {
		if entry.ID != educationID {
			kept = append(kept, entry)
		}
	}
	profile.Education = kept
	return s.save(ctx, profile)
}

func (s *ProfileService) loadProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.publish(ctx, events.EventProfileUpdated, profile.UserID, events.ProfileUpdatedPayload{
		Status: profile.Status,
		Skills: len(profile.Skills),
	})
	return profile, nil
}

func (s *ProfileService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
