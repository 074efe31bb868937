package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/catalog"
	"github.com/safezard/safezard-api/internal/config"
	"github.com/safezard/safezard-api/internal/database"
	"github.com/safezard/safezard-api/internal/handler"
	"github.com/safezard/safezard-api/internal/identity"
	"github.com/safezard/safezard-api/internal/middleware"
	"github.com/safezard/safezard-api/internal/models"
	"github.com/safezard/safezard-api/internal/repository"
	"github.com/safezard/safezard-api/internal/router"
	"github.com/safezard/safezard-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.ProgressRecord{}, &models.QuizLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not set, dashboard caching disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	provider := identity.NewGoTrueClient(cfg.AuthBaseURL, cfg.AuthAPIKey, logger)
	scenarios := catalog.Load(catalog.Config{
		Path:       cfg.CatalogPath,
		DetailPath: cfg.CatalogDetailPath,
		DetailIDs:  cfg.DetailScenarioIDs,
	}, logger)

	profileRepo := repository.NewProfileRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	quizLogRepo := repository.NewQuizLogRepository(db)

	roleResolver := service.NewRoleResolver(profileRepo, logger)
	accessGuard := service.NewAccessGuard(roleResolver, logger)

	authService := service.NewAuthService(provider, roleResolver, validate, logger)
	progressService := service.NewProgressService(progressRepo, quizLogRepo, validate, logger)
	studentService := service.NewStudentService(progressRepo, roleResolver, logger)
	facultyService := service.NewFacultyService(progressRepo, profileRepo, redisClient, cfg.DashboardCacheTTL, logger)
	adminService := service.NewAdminService(profileRepo, progressRepo, quizLogRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:     handler.NewAuthHandler(authService, logger),
		ScenarioHandler: handler.NewScenarioHandler(scenarios, logger),
		StudentHandler:  handler.NewStudentHandler(progressService, studentService, logger),
		FacultyHandler:  handler.NewFacultyHandler(facultyService, logger),
		AdminHandler:    handler.NewAdminHandler(adminService, logger),
		AccessGuard:     accessGuard,
		JWTMiddleware:   middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
