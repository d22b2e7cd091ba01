package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
	appsession "github.com/ponto-de-aula/ponto-de-aula/internal/session"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler/login"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/session"
)

// Middleware is a Fiber middleware that checks for user authentication.
// For a valid session it puts the signed-in user, the backend token and the
// capability set into fiber locals.
func Middleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		isLogoutPage  = IsLogoutPage(c)
		sessDataValid bool
	)

	originalURL := strings.ToLower(c.OriginalURL())
	if strings.HasPrefix(originalURL, "/static") {
		return c.Next()
	}

	// Allow logout page without authentication
	if isLogoutPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")

	// if no session cookie, redirect to login page
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	if err := sessData.Read(loginCookie); err != nil {
		// If we're already on the login page, don't redirect (would cause loop)
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	// valid data in session
	if sessData.User.ID != "" {
		sessDataValid = true

		store := appsession.NewStoreWith(sessData.User, sessData.Token)
		caps := rbac.NewCapabilities(store, nil)

		c.Locals(handler.LocalsCurrentUser, store.CurrentUser())
		c.Locals(handler.LocalsCapabilities, caps)
		c.Locals(handler.LocalsToken, sessData.Token)
	}

	if sessDataValid && isLoginPage {
		return c.Redirect("/posts")
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/logout")
}
