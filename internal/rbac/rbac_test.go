package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedResource struct {
	owner string
}

func (r ownedResource) OwnerID() string { return r.owner }

func TestCan_NilUserDenies(t *testing.T) {
	svc := NewService(nil)

	for _, subject := range []Subject{SubjectPost, SubjectUser, SubjectAll} {
		for _, action := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage} {
			assert.False(t, svc.Can(nil, action, subject, nil),
				"nil user must be denied %s on %s", action, subject)
		}
	}
}

func TestCan_UnknownRoleDeniesByDefault(t *testing.T) {
	svc := NewService(nil)
	ghost := &AuthUser{ID: "u1", Name: "Ghost", Role: Role("VISITOR")}

	assert.False(t, svc.Can(ghost, ActionRead, SubjectPost, nil))
	assert.False(t, svc.Can(ghost, ActionCreate, SubjectPost, nil))
}

func TestCan_ExplicitEmptyPolicyEqualsAbsence(t *testing.T) {
	svc := NewService(PolicyTable{
		RoleStudent: {}, // explicitly empty
	})
	student := &AuthUser{ID: "s1", Role: RoleStudent}
	teacher := &AuthUser{ID: "t1", Role: RoleTeacher} // absent from table

	assert.False(t, svc.Can(student, ActionRead, SubjectPost, nil))
	assert.False(t, svc.Can(teacher, ActionRead, SubjectPost, nil))
}

func TestCan_ManageSupersedes(t *testing.T) {
	svc := NewService(PolicyTable{
		RoleAdmin: {
			Static: map[Subject][]Action{
				SubjectAll: {ActionManage},
			},
		},
		RoleSecretary: {
			Static: map[Subject][]Action{
				SubjectPost: {ActionManage},
			},
			Dynamic: map[Subject]map[Action]Rule{
				SubjectPost: {ActionUpdate: Deny()},
			},
		},
	})

	admin := &AuthUser{ID: "a1", Role: RoleAdmin}
	secretary := &AuthUser{ID: "s1", Role: RoleSecretary}

	// manage on the wildcard subject grants every action on every subject,
	// including subjects with no explicit entries at all.
	for _, action := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete} {
		assert.True(t, svc.Can(admin, action, SubjectPost, nil))
		assert.True(t, svc.Can(admin, action, SubjectUser, nil))
	}

	// manage on a concrete subject overrides even an explicit deny rule for
	// an action on that subject, but does not leak onto other subjects.
	assert.True(t, svc.Can(secretary, ActionUpdate, SubjectPost, nil))
	assert.True(t, svc.Can(secretary, ActionDelete, SubjectPost, nil))
	assert.False(t, svc.Can(secretary, ActionRead, SubjectUser, nil))
}

func TestCan_StaticGrantNeedsNoResource(t *testing.T) {
	svc := NewService(nil)
	teacher := &AuthUser{ID: "t1", Role: RoleTeacher}

	assert.True(t, svc.Can(teacher, ActionRead, SubjectPost, nil))
	assert.True(t, svc.Can(teacher, ActionCreate, SubjectPost, nil))
}

func TestCan_OwnershipRule(t *testing.T) {
	svc := NewService(nil)
	teacher := &AuthUser{ID: "t1", Role: RoleTeacher}

	owned := ownedResource{owner: "t1"}
	foreign := ownedResource{owner: "t2"}
	orphan := ownedResource{}

	assert.True(t, svc.Can(teacher, ActionUpdate, SubjectPost, owned))
	assert.False(t, svc.Can(teacher, ActionUpdate, SubjectPost, foreign))

	// a missing owner identifier is a restriction, not an open door
	assert.False(t, svc.Can(teacher, ActionUpdate, SubjectPost, orphan))
}

func TestCan_MissingResourceDeniesDynamicOnlyGrant(t *testing.T) {
	svc := NewService(nil)
	teacher := &AuthUser{ID: "t1", Role: RoleTeacher}

	// update on Post is dynamic-only for teachers: without the resource the
	// caller cannot prove ownership, so the answer is deny, not an error.
	assert.False(t, svc.Can(teacher, ActionUpdate, SubjectPost, nil))
	assert.False(t, svc.Can(teacher, ActionDelete, SubjectPost, nil))
}

func TestCan_StudentFeed(t *testing.T) {
	svc := NewService(nil)
	student := &AuthUser{ID: "s1", Role: RoleStudent}

	assert.True(t, svc.Can(student, ActionRead, SubjectPost, nil))
	assert.False(t, svc.Can(student, ActionCreate, SubjectPost, nil))
	assert.False(t, svc.Can(student, ActionUpdate, SubjectPost, ownedResource{owner: "s1"}))
	assert.False(t, svc.Can(student, ActionDelete, SubjectPost, ownedResource{owner: "s1"}))
}

func TestCan_TeacherOwnPostLifecycle(t *testing.T) {
	svc := NewService(nil)
	teacher := &AuthUser{ID: "t1", Role: RoleTeacher}

	p1 := ownedResource{owner: "t1"}
	p2 := ownedResource{owner: "other-author"}

	assert.True(t, svc.Can(teacher, ActionUpdate, SubjectPost, p1))
	assert.True(t, svc.Can(teacher, ActionDelete, SubjectPost, p1))
	assert.False(t, svc.Can(teacher, ActionUpdate, SubjectPost, p2))
	assert.False(t, svc.Can(teacher, ActionDelete, SubjectPost, p2))
}

func TestCan_BlanketManageAdminDeletesUsers(t *testing.T) {
	// DefaultPolicies deliberately does not grant ADMIN blanket manage, but
	// the evaluator must honor such a table when supplied.
	svc := NewService(PolicyTable{
		RoleAdmin: {
			Static: map[Subject][]Action{
				SubjectAll: {ActionManage},
			},
		},
	})
	admin := &AuthUser{ID: "a1", Role: RoleAdmin}

	assert.True(t, svc.Can(admin, ActionDelete, SubjectUser, nil))
}

func TestCan_AdminEditsOnlyOwnPosts(t *testing.T) {
	// policy of record: even ADMIN updates only posts it owns
	svc := NewService(nil)
	admin := &AuthUser{ID: "a1", Role: RoleAdmin}

	assert.True(t, svc.Can(admin, ActionDelete, SubjectPost, nil))
	assert.True(t, svc.Can(admin, ActionUpdate, SubjectPost, ownedResource{owner: "a1"}))
	assert.False(t, svc.Can(admin, ActionUpdate, SubjectPost, ownedResource{owner: "t1"}))
}

func TestServiceCanEditCanDelete(t *testing.T) {
	svc := NewService(nil)
	secretary := &AuthUser{ID: "sec1", Role: RoleSecretary}

	own := ownedResource{owner: "sec1"}
	foreign := ownedResource{owner: "t9"}

	assert.True(t, svc.CanEdit(secretary, own))
	assert.True(t, svc.CanDelete(secretary, own))
	assert.False(t, svc.CanEdit(secretary, foreign))
	assert.False(t, svc.CanDelete(secretary, foreign))
	assert.False(t, svc.CanEdit(nil, own))
}

func TestRuleVariants(t *testing.T) {
	user := &AuthUser{ID: "u1", Role: RoleTeacher}
	res := ownedResource{owner: "u1"}

	assert.True(t, Allow().Allows(nil, nil))
	assert.False(t, Deny().Allows(user, res))
	assert.True(t, OwnerOnly().Allows(user, res))
	assert.False(t, OwnerOnly().Allows(user, ownedResource{owner: "u2"}))
	assert.False(t, OwnerOnly().Allows(nil, res))

	custom := Custom(func(u *AuthUser, r Ownable) bool {
		return u != nil && u.Role == RoleTeacher
	})
	assert.True(t, custom.Allows(user, nil))
	assert.False(t, custom.Allows(&AuthUser{Role: RoleStudent}, nil))

	// a custom rule without a predicate and the zero rule both fail closed
	assert.False(t, Rule{Kind: RuleCustom}.Allows(user, res))
	assert.False(t, Rule{}.Allows(user, res))
}

func TestDefaultPoliciesCoverEveryRole(t *testing.T) {
	for _, role := range Roles() {
		_, ok := DefaultPolicies[role]
		assert.True(t, ok, "role %s must have a policy entry", role)
	}
}
