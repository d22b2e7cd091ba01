package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanManageUserRole(t *testing.T) {
	tests := []struct {
		name    string
		current Role
		target  Role
		want    bool
	}{
		{"admin manages teacher", RoleAdmin, RoleTeacher, true},
		{"admin manages admin", RoleAdmin, RoleAdmin, true},
		{"admin manages secretary", RoleAdmin, RoleSecretary, true},
		{"secretary manages teacher", RoleSecretary, RoleTeacher, true},
		{"secretary manages student", RoleSecretary, RoleStudent, true},
		{"secretary cannot manage admin", RoleSecretary, RoleAdmin, false},
		{"secretary cannot manage secretary", RoleSecretary, RoleSecretary, false},
		{"teacher manages nobody", RoleTeacher, RoleStudent, false},
		{"student manages nobody", RoleStudent, RoleTeacher, false},
		{"empty role manages nobody", Role(""), RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageUserRole(tt.current, tt.target))
		})
	}
}

func TestCanViewUsers(t *testing.T) {
	assert.True(t, CanViewUsers(RoleAdmin))
	assert.True(t, CanViewUsers(RoleSecretary))
	assert.False(t, CanViewUsers(RoleTeacher))
	assert.False(t, CanViewUsers(RoleStudent))
	assert.False(t, CanViewUsers(Role("")))
}

func TestCanManageAllUsers(t *testing.T) {
	assert.True(t, CanManageAllUsers(RoleAdmin))
	assert.False(t, CanManageAllUsers(RoleSecretary))
	assert.False(t, CanManageAllUsers(RoleTeacher))
}

func TestManageableRoles(t *testing.T) {
	assert.Equal(t, Roles(), ManageableRoles(RoleAdmin))
	assert.Equal(t, []Role{RoleTeacher, RoleStudent}, ManageableRoles(RoleSecretary))
	assert.Empty(t, ManageableRoles(RoleTeacher))
	assert.Empty(t, ManageableRoles(RoleStudent))
}

func TestViewableRoles(t *testing.T) {
	assert.Equal(t, Roles(), ViewableRoles(RoleAdmin))
	assert.Equal(t, []Role{RoleTeacher, RoleStudent}, ViewableRoles(RoleSecretary))
}

func TestShouldHideSelf(t *testing.T) {
	me := &AuthUser{ID: "u1", Role: RoleAdmin}

	assert.True(t, ShouldHideSelf(me, "u1"))
	assert.False(t, ShouldHideSelf(me, "u2"))
	assert.False(t, ShouldHideSelf(nil, "u1"))
	assert.False(t, ShouldHideSelf(me, ""))
}
