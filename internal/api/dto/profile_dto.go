package dto

import (
	"time"

	"github.com/devnetwork/devnetwork-service/internal/domain"
)

// UpsertProfileRequest payload for creating or replacing a profile.
type UpsertProfileRequest struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
	Facebook       string `json:"facebook"`
}

// ExperienceRequest payload for one work history entry. Dates use the
// YYYY-MM-DD layout.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest payload for one education entry.
type EducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ProfileResponse is the wire shape of a profile.
type ProfileResponse struct {
	ID         string              `json:"id"`
	User       domain.Owner        `json:"user"`
	Company    string              `json:"company,omitempty"`
	Website    string              `json:"website,omitempty"`
	Location   string              `json:"location,omitempty"`
	Status     string              `json:"status"`
	Skills     []string            `json:"skills"`
	Bio        string              `json:"bio,omitempty"`
	Github     string              `json:"githubusername,omitempty"`
	Social     domain.SocialLinks  `json:"social"`
	Experience []domain.Experience `json:"experience"`
	Education  []domain.Education  `json:"education"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// FromProfile maps a bare profile; only the owner's id is known.
func FromProfile(p *domain.Profile) ProfileResponse {
	return fromProfile(p, domain.Owner{ID: p.UserID})
}

// FromProfileWithOwner maps a profile joined with its owner.
func FromProfileWithOwner(p *domain.ProfileWithOwner) ProfileResponse {
	return fromProfile(&p.Profile, p.Owner)
}

func fromProfile(p *domain.Profile, owner domain.Owner) ProfileResponse {
	resp := ProfileResponse{
		ID:         p.ID,
		User:       owner,
		Company:    p.Company,
		Website:    p.Website,
		Location:   p.Location,
		Status:     p.Status,
		Skills:     p.Skills,
		Bio:        p.Bio,
		Github:     p.GithubUsername,
		Social:     p.Social,
		Experience: p.Experience,
		Education:  p.Education,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Experience == nil {
		resp.Experience = []domain.Experience{}
	}
	if resp.Education == nil {
		resp.Education = []domain.Education{}
	}
	return resp
}
