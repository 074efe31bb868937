package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func userIDFromContext(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok {
		return v
	}
	return ""
}

func userEmailFromContext(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_email").(string); ok {
		return v
	}
	return ""
}

func userTokenFromContext(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_token").(string); ok {
		return v
	}
	return ""
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
