package services

import "errors"

var (
	// ErrMissingToken is returned when the login response carries no token.
	ErrMissingToken = errors.New("missing token in login response")

	// ErrMissingUser is returned when neither the login response nor the
	// current-user endpoint yields the authenticated user.
	ErrMissingUser = errors.New("missing user in login response")
)
