// Package login renders the sign-in page and exchanges credentials for a
// backend token.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/services"
	"github.com/ponto-de-aula/ponto-de-aula/internal/validation"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	template = "login"
)

// Service is the login handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(template, fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := validation.LoginForm{
		Identifier: c.FormValue("identifier"),
		Password:   c.FormValue("password"),
	}

	if err := validation.ValidateLogin(form); err != nil {
		return s.renderError(c, fiber.StatusBadRequest, "Informe usuário ou e-mail e uma senha com ao menos 8 caracteres", form.Identifier)
	}

	auth := services.NewAuth(api.New(s.cfg.Backend.URL))

	data, err := auth.Login(c.Context(), form.Identifier, form.Password)
	if err != nil {
		if api.IsUnauthorized(err) {
			return s.renderError(c, fiber.StatusUnauthorized, "Usuário ou senha inválidos", form.Identifier)
		}

		log.Error().Err(err).Msg("login against backend failed")

		return s.renderError(c, fiber.StatusBadGateway, "Não foi possível falar com o servidor, tente novamente", form.Identifier)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return s.renderError(c, fiber.StatusInternalServerError, "Erro interno, tente novamente", form.Identifier)
	}

	userSession := &session.Data{
		User:  data.User,
		Token: data.Token,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.renderError(c, fiber.StatusInternalServerError, "Erro interno, tente novamente", form.Identifier)
	}

	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect("/posts")
}

func (s *Service) renderError(c *fiber.Ctx, status int, message, identifier string) error {
	return c.Status(status).Render(template, fiber.Map{
		"Title":      s.cfg.Title,
		"Error":      message,
		"Identifier": identifier,
	})
}
