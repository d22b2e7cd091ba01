package rbac

// Role identifies a user's class of privilege.
type Role string

const (
	// RoleAdmin administers the whole platform.
	RoleAdmin Role = "ADMIN"
	// RoleSecretary manages teachers and students.
	RoleSecretary Role = "SECRETARY"
	// RoleTeacher publishes and maintains own posts.
	RoleTeacher Role = "TEACHER"
	// RoleStudent reads the post feed.
	RoleStudent Role = "STUDENT"

	// RoleAll is a filter sentinel meaning "every role". It is used by list
	// filters only and never appears on an authenticated user.
	RoleAll Role = "ALL"
)

// roleLabels holds the display label for each enumerated role.
var roleLabels = map[Role]string{
	RoleAdmin:     "Administrador",
	RoleSecretary: "Secretaria",
	RoleTeacher:   "Professor",
	RoleStudent:   "Aluno",
}

// Roles returns the enumerated roles in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleSecretary, RoleTeacher, RoleStudent}
}

// Valid reports whether r is one of the enumerated roles.
// The RoleAll sentinel is not a valid user role.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display label for the role. It is total: the empty role
// yields a placeholder, the RoleAll sentinel yields an aggregate label and
// any unknown value is rendered verbatim rather than failing.
func (r Role) Label() string {
	if r == "" {
		return "—"
	}

	if r == RoleAll {
		return "Todas as funções"
	}

	if label, ok := roleLabels[r]; ok {
		return label
	}

	return string(r)
}

// ParseRole maps form input to a Role. It accepts only the enumerated
// roles; everything else reports false.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if r.Valid() {
		return r, true
	}

	return "", false
}
