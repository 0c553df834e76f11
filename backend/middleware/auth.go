package middleware

import (
	"project/backend/config"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token and stores the subject
// username in locals for downstream handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, err := utils.ExtractUsernameFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Could not validate credentials")
		}
		c.Locals("username", username)
		return c.Next()
	}
}
