package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
)

// Require creates Fiber middleware that lets the request pass only when the
// capability check grants it. Signed out requests get 401, denied ones 403.
func Require(check func(caps *rbac.Capabilities) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := handler.Capabilities(c)
		if caps == nil || caps.User() == nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		if !check(caps) {
			log.Warn().Str("user_id", caps.User().ID).Str("path", c.Path()).
				Msg("user lacks required capability")

			return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
		}

		return c.Next()
	}
}
