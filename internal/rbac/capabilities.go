package rbac

// UserProvider supplies the current authenticated user, or nil when no one
// is signed in. The session store implements it.
type UserProvider interface {
	CurrentUser() *AuthUser
}

// Capabilities binds the authorization service to the current session user
// and exposes ready-to-call predicates for screens and handlers. Predicates
// re-read the provider on every call, so a login or logout is picked up
// immediately; with no user every predicate denies, never panics.
type Capabilities struct {
	provider UserProvider
	service  *Service
}

// NewCapabilities creates a capability projection for the given provider.
// A nil provider is a wiring bug, not a runtime state, and panics
// immediately. A nil service selects the default policy table.
func NewCapabilities(provider UserProvider, service *Service) *Capabilities {
	if provider == nil {
		panic("rbac: NewCapabilities requires a user provider")
	}

	if service == nil {
		service = NewService(nil)
	}

	return &Capabilities{provider: provider, service: service}
}

// User returns the current session user, or nil.
func (c *Capabilities) User() *AuthUser {
	return c.provider.CurrentUser()
}

// Role returns the current user's role, or the empty role when signed out.
func (c *Capabilities) Role() Role {
	if user := c.User(); user != nil {
		return user.Role
	}

	return ""
}

// Can delegates to the authorization service with the current user bound.
func (c *Capabilities) Can(action Action, subject Subject, resource Ownable) bool {
	return c.service.Can(c.User(), action, subject, resource)
}

// CanEdit reports whether the current user may update the given post.
func (c *Capabilities) CanEdit(resource Ownable) bool {
	return c.Can(ActionUpdate, SubjectPost, resource)
}

// CanDelete reports whether the current user may delete the given post.
func (c *Capabilities) CanDelete(resource Ownable) bool {
	return c.Can(ActionDelete, SubjectPost, resource)
}

// CanCreatePost reports whether the current user may create posts.
func (c *Capabilities) CanCreatePost() bool {
	return c.Can(ActionCreate, SubjectPost, nil)
}

// CanViewUsers reports whether the current user may open the user
// management area.
func (c *Capabilities) CanViewUsers() bool {
	return CanViewUsers(c.Role())
}

// CanManageRole reports whether the current user may manage users of
// targetRole.
func (c *Capabilities) CanManageRole(targetRole Role) bool {
	return CanManageUserRole(c.Role(), targetRole)
}

// CanCreateUser reports whether the current user may create a user with
// targetRole.
func (c *Capabilities) CanCreateUser(targetRole Role) bool {
	return c.CanManageRole(targetRole)
}

// CanManageUser reports whether the current user may manage the target
// user. An absent target denies.
func (c *Capabilities) CanManageUser(target *AuthUser) bool {
	if target == nil {
		return false
	}

	return c.CanManageRole(target.Role)
}

// CanEditSelf reports whether targetUserID identifies the current user.
func (c *Capabilities) CanEditSelf(targetUserID string) bool {
	user := c.User()

	return user != nil && user.ID != "" && user.ID == targetUserID
}

// CanManageAllUsers reports whether the current user manages every role.
func (c *Capabilities) CanManageAllUsers() bool {
	return CanManageAllUsers(c.Role())
}

// ManageableRoles returns the roles the current user may assign.
func (c *Capabilities) ManageableRoles() []Role {
	return ManageableRoles(c.Role())
}

// ViewableRoles returns the roles visible to the current user in lists.
func (c *Capabilities) ViewableRoles() []Role {
	return ViewableRoles(c.Role())
}
