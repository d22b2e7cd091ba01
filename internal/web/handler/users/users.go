// Package users provides the user management area. Access follows the
// role pair rules: admins manage everyone, secretaries only teachers and
// students, everyone else never reaches these routes.
package users

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
	"github.com/ponto-de-aula/ponto-de-aula/internal/services"
	"github.com/ponto-de-aula/ponto-de-aula/internal/validation"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/handler"
	authmiddleware "github.com/ponto-de-aula/ponto-de-aula/internal/web/middleware/auth"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/navigation"
)

const (
	// Path is the base path for user management.
	Path = handler.RootPath + "users"

	// TemplateList is the template for listing users.
	TemplateList = "users/list"
	// TemplateForm is the template for creating/updating a user.
	TemplateForm = "users/form"
)

// Service provides CRUD operations for users.
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

	canView := authmiddleware.Require(func(caps *rbac.Capabilities) bool {
		return caps.CanViewUsers()
	})

	app.Get(Path, canView, s.List)
	app.Get(Path+"/new", canView, s.New)
	app.Post(Path, canView, s.Create)
	app.Get(Path+"/:id/edit", canView, s.Edit)
	app.Post(Path+"/:id", canView, s.Update)
	app.Post(Path+"/:id/delete", canView, s.Delete)
}

func (s *Service) users(c *fiber.Ctx) *services.Users {
	return services.NewUsers(handler.Client(c, s.cfg))
}

func listNav(caps *rbac.Capabilities) *navigation.Context {
	return navigation.NewContext("Usuários", "users", "users").
		AddBreadcrumb("Feed", "/posts", false).
		AddBreadcrumb("Usuários", Path, true).
		WithTabs(caps)
}

// List shows the accounts the current user may see, with role filter and
// name/email search. The signed-in user is hidden from the list.
func (s *Service) List(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	nav := listNav(caps)

	roleFilter := rbac.Role(c.Query("role", ""))
	search := strings.ToLower(strings.TrimSpace(c.Query("search", "")))

	all, err := s.users(c).List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load users")

		return c.Status(fiber.StatusBadGateway).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Não foi possível carregar os usuários",
		}, handler.BaseLayout)
	}

	visible := make([]models.User, 0, len(all))

	for _, user := range all {
		if rbac.ShouldHideSelf(caps.User(), user.ID) {
			continue
		}

		if !viewable(caps, user.Role) {
			continue
		}

		if roleFilter != "" && user.Role != roleFilter {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(user.Name), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}

		visible = append(visible, user)
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation": nav,
		"Users":      visible,
		"Roles":      roleOptions(caps.ViewableRoles()),
		"RoleFilter": string(roleFilter),
		"Search":     c.Query("search", ""),
		"CanCreate":  len(caps.ManageableRoles()) > 0,
	}, handler.BaseLayout)
}

// New shows the creation form with only the assignable roles.
func (s *Service) New(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)

	nav := navigation.NewContext("Novo usuário", "users", "users").
		AddBreadcrumb("Usuários", Path, false).
		AddBreadcrumb("Novo", Path+"/new", true).
		WithTabs(caps)

	return c.Render(TemplateForm, fiber.Map{
		"Navigation": nav,
		"User":       models.User{},
		"IsCreate":   true,
		"Roles":      roleOptions(caps.ManageableRoles()),
	}, handler.BaseLayout)
}

// Create registers a new account.
func (s *Service) Create(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	form := userForm(c)

	if err := validation.ValidateUser(validation.UserFormCreate, form, caps.ManageableRoles()); err != nil {
		return s.renderForm(c, fiber.StatusBadRequest, true, models.User{
			Name:     form.Name,
			Email:    form.Email,
			Username: form.Username,
			Role:     form.Role,
		}, formErrorMessage(err))
	}

	_, err := s.users(c).Create(c.Context(), models.CreateUserPayload{
		Name:     form.Name,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return s.renderForm(c, fiber.StatusBadGateway, true, models.User{
			Name:     form.Name,
			Email:    form.Email,
			Username: form.Username,
			Role:     form.Role,
		}, "Não foi possível criar o usuário")
	}

	return c.Redirect(Path)
}

// Edit shows the edit form for an account the current user may manage.
func (s *Service) Edit(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)

	user, err := s.users(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	target := user.AuthUser()
	if !caps.CanManageUser(&target) {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
	}

	return s.renderForm(c, fiber.StatusOK, false, *user, "")
}

// Update modifies an account.
func (s *Service) Update(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	svc := s.users(c)

	user, err := svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	target := user.AuthUser()
	if !caps.CanManageUser(&target) {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
	}

	form := userForm(c)

	// a role change needs permission on the new role too
	if form.Role != user.Role && !caps.CanManageRole(form.Role) {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
	}

	if err := validation.ValidateUser(validation.UserFormEdit, form, caps.ManageableRoles()); err != nil {
		user.Name = form.Name
		user.Email = form.Email
		user.Username = form.Username

		return s.renderForm(c, fiber.StatusBadRequest, false, *user, formErrorMessage(err))
	}

	_, err = svc.Update(c.Context(), user.ID, models.UpdateUserPayload{
		Name:     form.Name,
		Email:    form.Email,
		Username: form.Username,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		log.Error().Err(err).Str("id", user.ID).Msg("failed to update user")

		return s.renderForm(c, fiber.StatusBadGateway, false, *user, "Não foi possível salvar o usuário")
	}

	return c.Redirect(Path)
}

// Delete removes an account.
func (s *Service) Delete(c *fiber.Ctx) error {
	caps := handler.Capabilities(c)
	svc := s.users(c)

	user, err := svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Redirect(Path)
	}

	// never delete the own account from here
	if caps.CanEditSelf(user.ID) {
		return c.Redirect(Path)
	}

	target := user.AuthUser()
	if !caps.CanManageUser(&target) {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
	}

	if err := svc.Delete(c.Context(), user.ID); err != nil {
		log.Error().Err(err).Str("id", user.ID).Msg("failed to delete user")
	}

	return c.Redirect(Path)
}

func (s *Service) renderForm(c *fiber.Ctx, status int, isCreate bool, user models.User, errMsg string) error {
	caps := handler.Capabilities(c)
	title := "Editar usuário"

	if isCreate {
		title = "Novo usuário"
	}

	nav := navigation.NewContext(title, "users", "users").
		AddBreadcrumb("Usuários", Path, false).
		AddBreadcrumb(title, "#", true).
		WithTabs(caps)

	data := fiber.Map{
		"Navigation": nav,
		"User":       user,
		"IsCreate":   isCreate,
		"Roles":      roleOptions(caps.ManageableRoles()),
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}

	return c.Status(status).Render(TemplateForm, data, handler.BaseLayout)
}

func viewable(caps *rbac.Capabilities, role rbac.Role) bool {
	for _, r := range caps.ViewableRoles() {
		if r == role {
			return true
		}
	}

	return false
}

// roleOption pairs a role value with its display label.
type roleOption struct {
	Value string
	Label string
}

func roleOptions(roles []rbac.Role) []roleOption {
	out := make([]roleOption, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleOption{Value: string(r), Label: r.Label()})
	}

	return out
}

func userForm(c *fiber.Ctx) validation.UserForm {
	return validation.UserForm{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Role:     rbac.Role(c.FormValue("role")),
	}
}

func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrPasswordRequired):
		return "Informe uma senha para o novo usuário"
	case errors.Is(err, validation.ErrPasswordTooShort):
		return "A senha precisa de ao menos 8 caracteres"
	case errors.Is(err, validation.ErrRoleRequired):
		return "Selecione uma função"
	case errors.Is(err, validation.ErrRoleNotAllowed):
		return "Você não pode atribuir essa função"
	default:
		return "Verifique os campos destacados"
	}
}
