package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"storeadmin/internal/services"
)

// UserIDKey is the fiber.Ctx locals key holding the resolved user id.
const UserIDKey = "user_id"

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := resolveUserID(c, authService)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthenticated",
			})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// Identify resolves the caller's identity when a valid bearer token is
// present but never rejects: handlers pass the (possibly empty) user id
// down explicitly and the service decides whether the operation needs one.
func Identify(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := resolveUserID(c, authService); userID != "" {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// UserID returns the resolved user id from the request context, or "".
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func resolveUserID(c *fiber.Ctx, authService *services.AuthService) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
