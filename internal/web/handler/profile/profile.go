// Package profile lets every signed-in user see and edit their own account
// and change their password.
package profile

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
	"github.com/ponto-de-aula/ponto-de-aula/internal/services"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/navigation"
)

const (
	// Path is the base path for the profile area.
	Path = handler.RootPath + "profile"

	template = "profile"

	minPasswordLength = 8
)

// Service provides the profile handlers.
type Service struct {
	cfg *config.Config
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
	app.Post(Path, s.Update)
	app.Post(Path+"/password", s.ChangePassword)
}

func (s *Service) users(c *fiber.Ctx) *services.Users {
	return services.NewUsers(handler.Client(c, s.cfg))
}

func (s *Service) nav(c *fiber.Ctx) *navigation.Context {
	return navigation.NewContext("Perfil", "profile", "profile").
		AddBreadcrumb("Perfil", Path, true).
		WithTabs(handler.Capabilities(c))
}

// Get shows the own account.
func (s *Service) Get(c *fiber.Ctx) error {
	me, err := s.users(c).Me(c.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			return c.Redirect("/login")
		}

		log.Error().Err(err).Msg("failed to load profile")

		return c.Status(fiber.StatusBadGateway).Render(template, fiber.Map{
			"Navigation": s.nav(c),
			"Error":      "Não foi possível carregar o perfil",
		}, handler.BaseLayout)
	}

	return s.render(c, fiber.StatusOK, me, "", "")
}

// Update modifies name and email of the own account.
func (s *Service) Update(c *fiber.Ctx) error {
	svc := s.users(c)

	name := c.FormValue("name")
	email := c.FormValue("email")

	me, err := svc.UpdateMe(c.Context(), models.UpdateUserPayload{
		Name:  name,
		Email: email,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		current, loadErr := svc.Me(c.Context())
		if loadErr != nil {
			return c.Redirect(Path)
		}

		return s.render(c, fiber.StatusBadGateway, current, "Não foi possível salvar o perfil", "")
	}

	return s.render(c, fiber.StatusOK, me, "", "Perfil atualizado")
}

// ChangePassword replaces the own password.
func (s *Service) ChangePassword(c *fiber.Ctx) error {
	svc := s.users(c)

	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")

	me, err := svc.Me(c.Context())
	if err != nil {
		return c.Redirect(Path)
	}

	if len(newPassword) < minPasswordLength {
		return s.render(c, fiber.StatusBadRequest, me, "A nova senha precisa de ao menos 8 caracteres", "")
	}

	err = svc.ChangeMyPassword(c.Context(), models.ChangePasswordPayload{
		CurrentPassword: current,
		NewPassword:     newPassword,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return s.render(c, fiber.StatusBadRequest, me, "Não foi possível trocar a senha, confira a senha atual", "")
	}

	return s.render(c, fiber.StatusOK, me, "", "Senha alterada")
}

func (s *Service) render(c *fiber.Ctx, status int, me *models.User, errMsg, successMsg string) error {
	data := fiber.Map{
		"Navigation": s.nav(c),
		"Me":         me,
		"RoleLabel":  me.Role.Label(),
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	if successMsg != "" {
		data["Success"] = successMsg
	}

	return c.Status(status).Render(template, data, handler.BaseLayout)
}
