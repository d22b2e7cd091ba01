package services

import (
	"context"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
)

const usersBasePath = "/users"

// Users wraps the account endpoints of the backend. The self-service
// operations (Me, UpdateMe, ChangeMyPassword) are available to every
// authenticated user; the CRUD operations require user management access
// and are additionally enforced server-side.
type Users struct {
	client *api.Client
}

// NewUsers creates the users service on top of client.
func NewUsers(client *api.Client) *Users {
	return &Users{client: client}
}

// Me fetches the authenticated account.
func (s *Users) Me(ctx context.Context) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Get(ctx, usersBasePath+"/me", nil, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// UpdateMe modifies the authenticated account.
func (s *Users) UpdateMe(ctx context.Context, payload models.UpdateUserPayload) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Patch(ctx, usersBasePath+"/me", payload, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// ChangeMyPassword replaces the authenticated account's password.
func (s *Users) ChangeMyPassword(ctx context.Context, payload models.ChangePasswordPayload) error {
	return s.client.Put(ctx, usersBasePath+"/me/password", payload, nil)
}

// List fetches all accounts.
func (s *Users) List(ctx context.Context) ([]models.User, error) {
	var res models.APIResponse[[]models.User]

	if err := s.client.Get(ctx, usersBasePath, nil, &res); err != nil {
		return nil, err
	}

	return res.Data, nil
}

// Create registers a new account.
func (s *Users) Create(ctx context.Context, payload models.CreateUserPayload) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Post(ctx, usersBasePath, payload, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Get fetches a single account.
func (s *Users) Get(ctx context.Context, id string) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Get(ctx, usersBasePath+"/"+id, nil, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Update modifies an account.
func (s *Users) Update(ctx context.Context, id string, payload models.UpdateUserPayload) (*models.User, error) {
	var res models.APIResponse[models.User]

	if err := s.client.Patch(ctx, usersBasePath+"/"+id, payload, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Delete removes an account.
func (s *Users) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, usersBasePath+"/"+id, nil)
}
