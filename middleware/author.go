package middleware

import (
	"github.com/gofiber/fiber/v2"

	"courseloc/config"
)

// RequireAuthor resolves the acting user from the AUTHOR_ID environment
// value and stores it in the request context. This is a development
// stand-in for real authentication; an unset AUTHOR_ID is a deployment
// misconfiguration and is refused before any store access.
func RequireAuthor(c *fiber.Ctx) error {
	if config.AppConfig == nil || config.AppConfig.AuthorID == "" {
		return JsonError(c, fiber.StatusInternalServerError, "unauthenticated", "AUTHOR_ID is not configured")
	}
	c.Locals("userId", config.AppConfig.AuthorID)
	return c.Next()
}
