// Package validation validates form input before it is sent to the backend.
// The rules mirror what the backend enforces, so most mistakes are caught
// without a round-trip.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
)

var validate = validator.New()

// LoginForm is the sign-in form. The identifier is an email when it
// contains '@', a username otherwise.
type LoginForm struct {
	Identifier string `form:"identifier" validate:"required"`
	Password   string `form:"password"   validate:"required,min=8"`
}

// ValidateLogin checks the sign-in form.
func ValidateLogin(f LoginForm) error {
	if err := validate.Struct(f); err != nil {
		return err //nolint: wrapcheck
	}

	identifier := strings.TrimSpace(f.Identifier)
	if strings.Contains(identifier, "@") {
		if err := validate.Var(identifier, "email"); err != nil {
			return ErrInvalidEmail
		}

		return nil
	}

	if len(identifier) < 3 {
		return ErrUsernameTooShort
	}

	return nil
}

// PostForm is the post creation/edit form. Tags are entered comma separated.
type PostForm struct {
	Title     string `form:"title"      validate:"required,min=3"`
	Content   string `form:"content"    validate:"required,min=10"`
	TagsInput string `form:"tags"`
	ImageURL  string `form:"image_url"  validate:"omitempty,url"`
	VideoURL  string `form:"video_url"  validate:"omitempty,url"`
}

// ValidatePost checks the post form.
func ValidatePost(f PostForm) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)

	return validate.Struct(f) //nolint: wrapcheck
}

// UserFormMode selects the rule set for the user form.
type UserFormMode int

const (
	// UserFormCreate requires a password and an explicit role choice.
	UserFormCreate UserFormMode = iota
	// UserFormEdit keeps the password optional.
	UserFormEdit
)

// UserForm is the user creation/edit form.
type UserForm struct {
	Name     string    `form:"name"     validate:"required,min=3"`
	Email    string    `form:"email"    validate:"required,email"`
	Username string    `form:"username" validate:"required,min=3"`
	Password string    `form:"password"`
	Role     rbac.Role `form:"role"`
}

// ValidateUser checks the user form. allowedRoles restricts the role choice
// to what the current user may assign; a role outside the set is rejected
// even if it is a valid platform role.
func ValidateUser(mode UserFormMode, f UserForm, allowedRoles []rbac.Role) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Username = strings.TrimSpace(f.Username)

	if err := validate.Struct(f); err != nil {
		return err //nolint: wrapcheck
	}

	password := strings.TrimSpace(f.Password)

	if mode == UserFormCreate && password == "" {
		return ErrPasswordRequired
	}

	if password != "" && len(password) < 8 {
		return ErrPasswordTooShort
	}

	if f.Role == "" {
		return ErrRoleRequired
	}

	if !f.Role.Valid() {
		return ErrRoleNotAllowed
	}

	for _, r := range allowedRoles {
		if r == f.Role {
			return nil
		}
	}

	return ErrRoleNotAllowed
}
