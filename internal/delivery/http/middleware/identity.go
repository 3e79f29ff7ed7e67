package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// Identity pulls the authenticated caller id supplied by the upstream
// identity provider. The id is opaque to this service; absence simply
// means an anonymous read.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Get("X-User-ID"); id != "" {
			c.Locals(userIDKey, id)
		}
		return c.Next()
	}
}

// CallerID returns the caller's id, or empty for anonymous requests.
func CallerID(c *fiber.Ctx) string {
	if id, ok := c.Locals(userIDKey).(string); ok {
		return id
	}
	return ""
}

// RequireIdentity rejects anonymous requests to mutating endpoints.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CallerID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		return c.Next()
	}
}
