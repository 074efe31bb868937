package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safezard/safezard-api/internal/observability"
	"github.com/safezard/safezard-api/internal/service"
	"github.com/safezard/safezard-api/internal/utils"
)

// RequireRole translates the access guard's decision into transport terms.
// Each protected group names exactly one required role; the guard resolves
// the caller's role from the profiles table on every request.
func RequireRole(guard *service.AccessGuard, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)

		decision := guard.Authorize(c.Context(), userID, requiredRole)
		if decision.Allowed {
			return c.Next()
		}

		observability.AuthzDenied().WithLabelValues(decision.Reason, requiredRole).Inc()

		status := fiber.StatusForbidden
		if decision.Reason == service.DenyUnauthenticated {
			status = fiber.StatusUnauthorized
		}

		return utils.SendError(c, status, decision.Message)
	}
}
