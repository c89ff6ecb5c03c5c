package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/devnetwork-service/internal/api/dto"
	"github.com/devnetwork/devnetwork-service/internal/auth"
	"github.com/devnetwork/devnetwork-service/internal/service"
	apperrors "github.com/devnetwork/devnetwork-service/pkg/util"
	"github.com/devnetwork/devnetwork-service/pkg/validation"
)

const dateLayout = "2006-01-02"

// ProfileHandler exposes profile CRUD and the embedded experience and
// education sub-lists.
type ProfileHandler struct {
	profiles *service.ProfileService
	validate *validator.Validate
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{profiles: profileService, validate: validate}
}

// GetMine handles GET /api/profile/me.
func (h *ProfileHandler) GetMine(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	profile, err := h.profiles.GetMine(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return apperrors.NewBadRequest("User does not have profile")
		}
		return err
	}
	return c.JSON(dto.FromProfileWithOwner(profile))
}

// Upsert handles POST /api/profile.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "invalid payload"}})
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	profile, err := h.profiles.Upsert(c.Context(), userID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
		Facebook:       req.Facebook,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProfile(profile))
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.profiles.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, dto.FromProfileWithOwner(&profiles[i]))
	}
	return c.JSON(items)
}

// GetByUser handles GET /api/profile/user/:user_id.
func (h *ProfileHandler) GetByUser(c *fiber.Ctx) error {
	profile, err := h.profiles.GetByUser(c.Context(), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return apperrors.NewBadRequest("Profile not found")
		}
		return err
	}
	return c.JSON(dto.FromProfile(profile))
}

// DeleteAccount handles DELETE /api/profile, removing profile and account.
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	if err := h.profiles.DeleteAccount(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "invalid payload"}})
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return err
	}

	profile, err := h.profiles.AddExperience(c.Context(), userID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return mapProfileErr(err)
	}
	return c.JSON(dto.FromProfile(profile))
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	profile, err := h.profiles.RemoveExperience(c.Context(), userID, c.Params("exp_id"))
	if err != nil {
		return mapProfileErr(err)
	}
	return c.JSON(dto.FromProfile(profile))
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "invalid payload"}})
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return err
	}

	profile, err := h.profiles.AddEducation(c.Context(), userID, service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return mapProfileErr(err)
	}
	return c.JSON(dto.FromProfile(profile))
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	profile, err := h.profiles.RemoveEducation(c.Context(), userID, c.Params("edu_id"))
	if err != nil {
		return mapProfileErr(err)
	}
	return c.JSON(dto.FromProfile(profile))
}

func mapProfileErr(err error) error {
	if errors.Is(err, service.ErrProfileNotFound) {
		return apperrors.NewBadRequest("User does not have profile")
	}
	return err
}

func parseDateRange(fromStr, toStr string) (time.Time, *time.Time, error) {
	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, nil, apperrors.NewValidationError([]apperrors.FieldError{
			{Msg: "from must be a valid date (YYYY-MM-DD)", Param: "from"},
		})
	}
	if toStr == "" {
		return from, nil, nil
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, nil, apperrors.NewValidationError([]apperrors.FieldError{
			{Msg: "to must be a valid date (YYYY-MM-DD)", Param: "to"},
		})
	}
	return from, &to, nil
}
