package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

// AdminHandler exposes the admin overview endpoint.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the overview endpoint.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/overview", h.overview)
}

func (h *AdminHandler) overview(c *fiber.Ctx) error {
	overview, err := h.service.Overview(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load admin overview")
		return utils.SendError(c, fiber.StatusInternalServerError, "could not retrieve platform data")
	}

	return utils.SendSuccess(c, "overview retrieved", overview)
}
