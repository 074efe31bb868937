package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

// StudentHandler exposes the quiz write path, analytics and profile endpoints.
type StudentHandler struct {
	progress service.ProgressService
	students service.StudentService
	logger   zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(progress service.ProgressService, students service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		progress: progress,
		students: students,
		logger:   logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the student endpoints.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Post("/progress", h.saveProgress)
	router.Get("/analytics", h.analytics)
	router.Get("/profile", h.profile)
}

func (h *StudentHandler) saveProgress(c *fiber.Ctx) error {
	var payload dto.SaveProgressRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.progress.RecordAttempt(c.Context(), userIDFromContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "scenario id is required")
		}
		h.logger.Error().Err(err).Msg("failed to save progress")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to save progress")
	}

	return utils.SendSuccess(c, "progress saved", result)
}

func (h *StudentHandler) analytics(c *fiber.Ctx) error {
	analytics, err := h.progress.Analytics(c.Context(), userIDFromContext(c))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load analytics")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load analytics")
	}

	return utils.SendSuccess(c, "analytics retrieved", analytics)
}

func (h *StudentHandler) profile(c *fiber.Ctx) error {
	profile := h.students.Profile(c.Context(), userIDFromContext(c), userEmailFromContext(c))
	return utils.SendSuccess(c, "profile retrieved", profile)
}
