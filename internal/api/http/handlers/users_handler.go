package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/devnetwork-service/internal/api/dto"
	"github.com/devnetwork/devnetwork-service/internal/service"
	apperrors "github.com/devnetwork/devnetwork-service/pkg/util"
	"github.com/devnetwork/devnetwork-service/pkg/validation"
)

// UsersHandler exposes the registration endpoint.
type UsersHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, validate *validator.Validate) *UsersHandler {
	return &UsersHandler{auth: authService, validate: validate}
}

// Register handles POST /api/users. The response carries a token so the
// client is signed in right after registration.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "invalid payload"}})
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	_, token, _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return apperrors.NewValidationError([]apperrors.FieldError{{Msg: "User already exists", Param: "email"}})
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.TokenResponse{Token: token})
}
