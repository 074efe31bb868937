package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safezard/safezard-api/internal/config"
	"github.com/safezard/safezard-api/internal/handler"
	"github.com/safezard/safezard-api/internal/middleware"
	"github.com/safezard/safezard-api/internal/models"
	"github.com/safezard/safezard-api/internal/observability"
	"github.com/safezard/safezard-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler     *handler.AuthHandler
	ScenarioHandler *handler.ScenarioHandler
	StudentHandler  *handler.StudentHandler
	FacultyHandler  *handler.FacultyHandler
	AdminHandler    *handler.AdminHandler
	AccessGuard     *service.AccessGuard
	JWTMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		public := api.Group("/auth", middleware.RateLimit("auth", cfg.LoginRateLimit, cfg.LoginRateWindow))
		deps.AuthHandler.RegisterPublic(public)

		protected := api.Group("/auth", jwtMiddleware)
		deps.AuthHandler.RegisterProtected(protected)
	}

	if deps.ScenarioHandler != nil {
		deps.ScenarioHandler.Register(api.Group("/scenarios", jwtMiddleware))
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/student", jwtMiddleware))
	}

	if deps.FacultyHandler != nil && deps.AccessGuard != nil {
		faculty := api.Group("/faculty", jwtMiddleware, middleware.RequireRole(deps.AccessGuard, models.RoleFaculty))
		deps.FacultyHandler.Register(faculty)
	}

	if deps.AdminHandler != nil && deps.AccessGuard != nil {
		admin := api.Group("/admin", jwtMiddleware, middleware.RequireRole(deps.AccessGuard, models.RoleAdmin))
		deps.AdminHandler.Register(admin)
	}
}
