package validation

import "errors"

var (
	// ErrInvalidEmail is returned when an identifier looks like an email but
	// is not a valid one.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUsernameTooShort is returned for usernames below three characters.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")

	// ErrPasswordRequired is returned when creating a user without a password.
	ErrPasswordRequired = errors.New("password is required")

	// ErrPasswordTooShort is returned for passwords below eight characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrRoleRequired is returned when no role was selected.
	ErrRoleRequired = errors.New("a role must be selected")

	// ErrRoleNotAllowed is returned when the selected role is outside the
	// set the current user may assign.
	ErrRoleNotAllowed = errors.New("role not allowed")
)
