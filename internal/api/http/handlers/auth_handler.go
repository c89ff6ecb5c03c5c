package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/devnetwork-service/internal/api/dto"
	"github.com/devnetwork/devnetwork-service/internal/auth"
	"github.com/devnetwork/devnetwork-service/internal/service"
	apperrors "github.com/devnetwork/devnetwork-service/pkg/util"
	"github.com/devnetwork/devnetwork-service/pkg/validation"
)

// AuthHandler exposes login and current-user endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validate}
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "invalid payload"}})
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewInvalidCredentials()
		}
		return err
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// Me handles GET /api/auth, returning the account behind the token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("No token, access denied")
	}

	user, err := h.auth.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return apperrors.NewBadRequest("User not found")
		}
		return err
	}

	return c.JSON(dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	})
}
