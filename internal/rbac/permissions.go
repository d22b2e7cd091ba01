package rbac

// This file implements the user-management authorization axis. It is a
// deliberately separate, hardcoded rule set independent of the generic
// policy table: the user administration area is gated per role pair, not
// per subject/action.

// CanManageAllUsers reports whether role may manage users of every role.
func CanManageAllUsers(role Role) bool {
	return role == RoleAdmin
}

// CanManageLimitedUsers reports whether role may manage the limited set of
// roles (teachers and students).
func CanManageLimitedUsers(role Role) bool {
	return role == RoleSecretary
}

// CanViewUsers reports whether role may see the user management area at all.
func CanViewUsers(role Role) bool {
	return CanManageAllUsers(role) || CanManageLimitedUsers(role)
}

// CanManageUserRole reports whether a user of currentRole may manage users
// of targetRole. ADMIN manages every role; SECRETARY manages only teachers
// and students; every other role manages none.
func CanManageUserRole(currentRole, targetRole Role) bool {
	if CanManageAllUsers(currentRole) {
		return true
	}

	if CanManageLimitedUsers(currentRole) {
		return targetRole == RoleTeacher || targetRole == RoleStudent
	}

	return false
}

// ManageableRoles returns the roles a user of the given role may assign or
// manage, in display order. Empty for roles without user management access.
func ManageableRoles(role Role) []Role {
	var out []Role

	for _, r := range Roles() {
		if CanManageUserRole(role, r) {
			out = append(out, r)
		}
	}

	return out
}

// ViewableRoles returns the roles visible in the user list for the given
// role. SECRETARY sees only teachers and students; everyone else with list
// access sees all roles.
func ViewableRoles(role Role) []Role {
	if CanManageLimitedUsers(role) {
		return []Role{RoleTeacher, RoleStudent}
	}

	return Roles()
}

// ShouldHideSelf reports whether target is the current user and should be
// hidden from the user list.
func ShouldHideSelf(current *AuthUser, targetID string) bool {
	return current != nil && targetID != "" && current.ID == targetID
}
