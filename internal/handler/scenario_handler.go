package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/catalog"
	"github.com/safezard/safezard-api/internal/utils"
)

// ScenarioHandler serves the read-only scenario catalog.
type ScenarioHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewScenarioHandler constructs the handler.
func NewScenarioHandler(catalog *catalog.Catalog, logger zerolog.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		catalog: catalog,
		logger:  logger.With().Str("component", "scenario_handler").Logger(),
	}
}

// Register attaches the catalog endpoints.
func (h *ScenarioHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *ScenarioHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "scenarios retrieved", h.catalog.List())
}

func (h *ScenarioHandler) get(c *fiber.Ctx) error {
	scenario, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrScenarioNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "scenario not found")
		}
		h.logger.Error().Err(err).Msg("failed to resolve scenario")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "scenario retrieved", scenario)
}
