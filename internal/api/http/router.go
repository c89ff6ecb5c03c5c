package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devnetwork/devnetwork-service/internal/api/http/handlers"
	"github.com/devnetwork/devnetwork-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Profile        *handlers.ProfileHandler
	Github         *handlers.GithubHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/users", cfg.Users.Register)

	api.Post("/auth", cfg.Auth.Login)
	api.Get("/auth", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	profile := api.Group("/profile")
	profile.Get("/me", cfg.AuthMiddleware.Handle, cfg.Profile.GetMine)
	profile.Post("/", cfg.AuthMiddleware.Handle, cfg.Profile.Upsert)
	profile.Get("/", cfg.Profile.List)
	profile.Get("/user/:user_id", cfg.Profile.GetByUser)
	profile.Delete("/", cfg.AuthMiddleware.Handle, cfg.Profile.DeleteAccount)

	profile.Put("/experience", cfg.AuthMiddleware.Handle, cfg.Profile.AddExperience)
	profile.Delete("/experience/:exp_id", cfg.AuthMiddleware.Handle, cfg.Profile.RemoveExperience)
	profile.Put("/education", cfg.AuthMiddleware.Handle, cfg.Profile.AddEducation)
	profile.Delete("/education/:edu_id", cfg.AuthMiddleware.Handle, cfg.Profile.RemoveEducation)

	profile.Get("/github/:username", cfg.Github.GetRepos)
}
