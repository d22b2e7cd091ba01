// Package services implements the typed operations of the Ponto de Aula
// REST backend consumed by the web handlers.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
)

// Auth performs authentication against the backend.
type Auth struct {
	client *api.Client
}

// NewAuth creates the auth service on top of client.
func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

// LoginData is a successful authentication result.
type LoginData struct {
	Token string
	User  rbac.AuthUser
}

// Login authenticates with an identifier (email or username) and password.
// Identifiers containing '@' are sent as email, everything else as username.
// When the login response omits the user record, it is resolved with a
// follow-up call to /users/me using the fresh token.
func (s *Auth) Login(ctx context.Context, identifier, password string) (*LoginData, error) {
	identifier = strings.TrimSpace(identifier)

	payload := models.LoginPayload{Password: password}
	if strings.Contains(identifier, "@") {
		payload.Email = identifier
	} else {
		payload.Username = identifier
	}

	var res models.APIResponse[struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}]

	if err := s.client.Post(ctx, "/auth/login", payload, &res); err != nil {
		return nil, err
	}

	if res.Data.Token == "" {
		return nil, ErrMissingToken
	}

	s.client.SetToken(res.Data.Token)

	user := res.Data.User
	if user == nil {
		me, err := s.CurrentUser(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("login response had no user and /users/me failed")
			return nil, ErrMissingUser
		}

		user = me
	}

	return &LoginData{Token: res.Data.Token, User: user.AuthUser()}, nil
}

// CurrentUser fetches the authenticated account from /users/me.
func (s *Auth) CurrentUser(ctx context.Context) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Get(ctx, "/users/me", nil, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}
