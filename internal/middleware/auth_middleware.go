package middleware

import (
	"strings"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LoginPath is where an unauthenticated admin is sent.
const LoginPath = "/admin/login"

// BearerToken extracts the token from "Authorization: Bearer <token>".
// It returns "" when the header is missing or malformed.
func BearerToken(c *fiber.Ctx) string {
	parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Authenticate(c.UserContext(), BearerToken(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    i18n.T(Lang(c), i18n.KeyErrUnauthorized),
				"reason":   err.Error(),
				"redirect": LoginPath,
			})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.FullName)

		return c.Next()
	}
}
