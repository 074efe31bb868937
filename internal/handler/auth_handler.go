package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/identity"
	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

// AuthHandler wires account endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic attaches the unauthenticated account endpoints.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Post("/confirm", h.confirm)
}

// RegisterProtected attaches the endpoints that require a valid session.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Post("/logout", h.logout)
	router.Post("/email", h.updateEmail)
	router.Post("/password", h.resetPassword)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	message, err := h.service.Register(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err, "missing email or password")
	}

	return utils.SendSuccess(c, message, nil)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Login(c.Context(), payload)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid login credentials")
		}
		return h.handleError(c, err, "missing email or password")
	}

	return utils.SendSuccess(c, "login successful", session)
}

func (h *AuthHandler) confirm(c *fiber.Ctx) error {
	var payload dto.ConfirmRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Confirm(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err, "no access token provided")
	}

	return utils.SendSuccess(c, "account verified", session)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	h.service.Logout(c.Context(), userTokenFromContext(c))
	return utils.SendSuccess(c, "logged out", nil)
}

func (h *AuthHandler) updateEmail(c *fiber.Ctx) error {
	var payload dto.UpdateEmailRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UpdateEmail(c.Context(), userTokenFromContext(c), payload); err != nil {
		return h.handleError(c, err, "new email is required")
	}

	return utils.SendSuccess(c, "confirmation email sent to new address", nil)
}

func (h *AuthHandler) resetPassword(c *fiber.Ctx) error {
	var payload dto.ResetPasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	message, err := h.service.ResetPassword(c.Context(), userTokenFromContext(c), userEmailFromContext(c), payload.Password)
	if err != nil {
		return h.handleError(c, err, "invalid request")
	}

	return utils.SendSuccess(c, message, nil)
}

// handleError maps service failures onto the error taxonomy: validation and
// provider rejections surface as 400s with a specific message, everything
// else is logged and converted to a generic 500.
func (h *AuthHandler) handleError(c *fiber.Ctx, err error, validationMessage string) error {
	var apiErr *identity.APIError
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage)
	case errors.As(err, &apiErr):
		return utils.SendError(c, fiber.StatusBadRequest, apiErr.Message)
	case errors.Is(err, service.ErrRegistrationRejected):
		return utils.SendError(c, fiber.StatusBadRequest, "registration failed, please check your details")
	default:
		h.logger.Error().Err(err).Msg("auth operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "system error")
	}
}
