// Package navigation provides utilities for managing navigation state,
// breadcrumbs and the capability gated tab bar.
package navigation

import (
	"github.com/ponto-de-aula/ponto-de-aula/internal/rbac"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Tab represents a top level navigation entry.
type Tab struct {
	Title  string
	URL    string
	Page   string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	Tabs          []Tab
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithTabs fills the tab bar according to what the signed-in user may do.
// The feed and the profile are always there, authoring and user management
// tabs only show up when the capability set grants them.
func (c *Context) WithTabs(caps *rbac.Capabilities) *Context {
	if caps == nil {
		return c
	}

	tabs := []Tab{
		{Title: "Feed", URL: "/posts", Page: "feed"},
	}

	if caps.CanCreatePost() {
		tabs = append(tabs, Tab{Title: "Meus posts", URL: "/posts/mine", Page: "mine"})
	}

	if caps.CanViewUsers() {
		tabs = append(tabs, Tab{Title: "Usuários", URL: "/users", Page: "users"})
	}

	tabs = append(tabs, Tab{Title: "Perfil", URL: "/profile", Page: "profile"})

	for i := range tabs {
		tabs[i].Active = tabs[i].Page == c.ActivePage
	}

	c.Tabs = tabs

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
