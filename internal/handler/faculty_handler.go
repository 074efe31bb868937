package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

// FacultyHandler exposes the faculty dashboard endpoint.
type FacultyHandler struct {
	service service.FacultyService
	logger  zerolog.Logger
}

// NewFacultyHandler constructs the handler.
func NewFacultyHandler(service service.FacultyService, logger zerolog.Logger) *FacultyHandler {
	return &FacultyHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_handler").Logger(),
	}
}

// Register attaches the dashboard endpoint.
func (h *FacultyHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
}

func (h *FacultyHandler) dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load faculty dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "could not retrieve faculty data")
	}

	return utils.SendSuccess(c, "dashboard retrieved", dashboard)
}
