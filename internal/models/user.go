package models

import "github.com/ponto-de-aula/ponto-de-aula/internal/rbac"

// User is a platform account as returned by the backend.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	Role         rbac.Role `json:"role"`
	RegisteredAt string    `json:"registeredAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
}

// AuthUser projects the account onto the authorization principal.
func (u User) AuthUser() rbac.AuthUser {
	return rbac.AuthUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// CreateUserPayload is the body of POST /users.
type CreateUserPayload struct {
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     rbac.Role `json:"role"`
}

// UpdateUserPayload is the body of PATCH /users/{id} and PATCH /users/me.
// Role and Password are only honored on the management route, self-service
// updates ignore them.
type UpdateUserPayload struct {
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty"`
	Username string    `json:"username,omitempty"`
	Password string    `json:"password,omitempty"`
	Role     rbac.Role `json:"role,omitempty"`
}

// ChangePasswordPayload is the body of PUT /users/me/password.
type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// LoginPayload is the body of POST /auth/login. The backend accepts either
// an email or a username, never both.
type LoginPayload struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}
