// Package main provides the entry point for the Ponto de Aula client.
// It initializes and runs a web server using the Fiber framework that fronts
// the Ponto de Aula REST backend, offering login, a role-gated post feed and
// user management screens. Authorization decisions are made client-side by the
// rbac package to decide which affordances each screen renders; the backend
// remains the authoritative enforcement boundary.
package main
