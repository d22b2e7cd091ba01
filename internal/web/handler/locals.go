package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/session"
)

// CurrentUser returns the signed-in user from fiber locals, nil when signed out.
func CurrentUser(c *fiber.Ctx) *rbac.AuthUser {
	if u, ok := c.Locals(LocalsCurrentUser).(*rbac.AuthUser); ok {
		return u
	}

	return nil
}

// Capabilities returns the capability set from fiber locals, nil when signed out.
func Capabilities(c *fiber.Ctx) *rbac.Capabilities {
	if caps, ok := c.Locals(LocalsCapabilities).(*rbac.Capabilities); ok {
		return caps
	}

	return nil
}

// Token returns the backend token from fiber locals.
func Token(c *fiber.Ctx) string {
	if token, ok := c.Locals(LocalsToken).(string); ok {
		return token
	}

	return ""
}

// Client builds a backend client bound to the request's token.
// A 401 from the backend invalidates the local session, the next request
// lands on the login page.
func Client(c *fiber.Ctx, cfg *config.Config) *api.Client {
	opts := make([]api.Option, 0, 2) //nolint:mnd
	if cfg.Backend.Timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.Backend.Timeout))
	}

	if cfg.Backend.Debug {
		opts = append(opts, api.WithDebug())
	}

	client := api.New(cfg.Backend.URL, opts...)

	client.SetToken(Token(c))

	sessionID := c.Cookies("session")
	client.SetUnauthorizedHandler(func() {
		if sessionID == "" {
			return
		}

		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete stale session")
		}
	})

	return client
}
