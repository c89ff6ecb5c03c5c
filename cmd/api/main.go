package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/devnetwork/devnetwork-service/internal/api/http"
	"github.com/devnetwork/devnetwork-service/internal/api/http/handlers"
	"github.com/devnetwork/devnetwork-service/internal/auth"
	"github.com/devnetwork/devnetwork-service/internal/config"
	"github.com/devnetwork/devnetwork-service/internal/events"
	"github.com/devnetwork/devnetwork-service/internal/github"
	"github.com/devnetwork/devnetwork-service/internal/observability"
	"github.com/devnetwork/devnetwork-service/internal/persistence"
	"github.com/devnetwork/devnetwork-service/internal/repository"
	"github.com/devnetwork/devnetwork-service/internal/service"
	"github.com/devnetwork/devnetwork-service/internal/worker"
	"github.com/devnetwork/devnetwork-service/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	profileService := service.NewProfileService(profileRepo, userRepo, dispatcher)
	githubService := service.NewGithubService(github.NewClient(cfg.Github), redis.Client, cfg.Github.CacheTTL(), logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), logger)
	validate := validation.New()
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, validate),
		Users:          handlers.NewUsersHandler(authService, validate),
		Profile:        handlers.NewProfileHandler(profileService, validate),
		Github:         handlers.NewGithubHandler(githubService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
