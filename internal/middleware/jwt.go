package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/safezard/safezard-api/internal/utils"
)

// JWTProtected validates provider-issued HS256 bearer tokens. The auth
// provider signs access tokens with the shared project secret; the subject
// claim carries the user's UUID and the email claim its address. Roles are
// never trusted from claims; they come from the profiles table.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token subject")
		}

		c.Locals("user_id", subject)
		c.Locals("user_token", tokenString)
		if email := extractEmailFromClaims(claims); email != "" {
			c.Locals("user_email", email)
		}

		return c.Next()
	}
}

func extractEmailFromClaims(claims jwt.MapClaims) string {
	if value, ok := claims["email"]; ok {
		if email, ok := value.(string); ok {
			return strings.TrimSpace(email)
		}
	}
	return ""
}
