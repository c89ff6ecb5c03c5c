package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/devnetwork-service/internal/github"
	"github.com/devnetwork/devnetwork-service/internal/service"
	apperrors "github.com/devnetwork/devnetwork-service/pkg/util"
)

// GithubHandler proxies repository listings for profile pages.
type GithubHandler struct {
	github *service.GithubService
}

// NewGithubHandler constructs handler.
func NewGithubHandler(githubService *service.GithubService) *GithubHandler {
	return &GithubHandler{github: githubService}
}

// GetRepos handles GET /api/profile/github/:username.
func (h *GithubHandler) GetRepos(c *fiber.Ctx) error {
	repos, err := h.github.ListRepos(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, github.ErrUserNotFound) {
			return apperrors.NewBadRequest("No github user found")
		}
		return err
	}
	return c.JSON(repos)
}
