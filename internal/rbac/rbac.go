package rbac

// AuthUser is the authenticated principal held for the session's duration.
// It is treated as an immutable value and replaced wholesale on change.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// Service evaluates authorization requests against a policy table.
// The table is constructed once and never mutated afterwards, so a Service
// is safe for concurrent use.
type Service struct {
	policies PolicyTable
}

// NewService creates an authorization service. A nil table selects
// DefaultPolicies.
func NewService(policies PolicyTable) *Service {
	if policies == nil {
		policies = DefaultPolicies
	}

	return &Service{policies: policies}
}

// Can decides whether user may perform action on subject, optionally taking
// the concrete resource into account. The evaluation order is strict and
// short-circuiting:
//
//  1. a nil user is denied
//  2. a role without a policy entry is denied by default
//  3. a manage grant on the subject or on the wildcard subject allows
//  4. a static grant for (subject, action) allows
//  5. a dynamic rule for (subject, action) decides, but only when a resource
//     was supplied; without the resource ownership cannot be proven and the
//     request is denied
//
// Can is a pure function of its inputs: no I/O, no side effects, and a
// denial is a plain false, never an error.
func (s *Service) Can(user *AuthUser, action Action, subject Subject, resource Ownable) bool {
	if user == nil {
		return false
	}

	policy, ok := s.policies[user.Role]
	if !ok {
		return false
	}

	if policy.grantsStatic(subject, ActionManage) || policy.grantsStatic(SubjectAll, ActionManage) {
		return true
	}

	if policy.grantsStatic(subject, action) {
		return true
	}

	if rule, ok := policy.dynamicRule(subject, action); ok && resource != nil {
		return rule.Allows(user, resource)
	}

	return false
}

// CanEdit reports whether user may update the given post.
func (s *Service) CanEdit(user *AuthUser, resource Ownable) bool {
	return s.Can(user, ActionUpdate, SubjectPost, resource)
}

// CanDelete reports whether user may delete the given post.
func (s *Service) CanDelete(user *AuthUser, resource Ownable) bool {
	return s.Can(user, ActionDelete, SubjectPost, resource)
}
