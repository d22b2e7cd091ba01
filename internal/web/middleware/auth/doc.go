// Package auth provides authentication middleware for the web application.
//
// The middleware validates the session cookie, loads the stored session and
// exposes the signed-in user, the backend token and the capability set
// through fiber.Locals. Unauthenticated requests are redirected to the login
// page, login and logout stay reachable without a session.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth
