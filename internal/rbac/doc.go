// Package rbac provides the role-based authorization core of the application.
//
// Authorization is decided along two independent axes:
//
//   - A generic policy table mapping each Role to static grants
//     (Subject/Action pairs that always hold) and dynamic rules (grants that
//     depend on the concrete resource, such as ownership). The Service type
//     evaluates requests against the table.
//
//   - A narrower, hardcoded user-management axis (CanViewUsers,
//     CanManageUserRole and friends) gating the user administration area.
//     It is intentionally not expressed through the policy table; the two
//     rule sets evolved separately and merging them would silently change
//     access behavior.
//
// # Evaluation
//
// Service.Can applies a strict short-circuit order: a nil user is always
// denied; a role without a policy entry is denied by default; a `manage`
// grant on the subject or on the `all` wildcard allows everything; then
// static grants; then dynamic rules, which are consulted only when a
// concrete resource was supplied (no resource means deny, since ownership
// cannot be proven). Denials are plain booleans, never errors.
//
// # Capability projection
//
// Capabilities binds a Service to the current session user (via the
// UserProvider interface) and exposes ready-to-call predicates that
// screens consult while rendering:
//
//	caps := rbac.NewCapabilities(store, nil)
//	if caps.CanEdit(post) { /* render edit button */ }
//
// Every predicate denies when no user is signed in. Client-side decisions
// only hide affordances and avoid round-trips; the backend remains the
// authoritative enforcement boundary.
package rbac
