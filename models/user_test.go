package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopedTeamID(t *testing.T) {
	t.Run("admin follows the selection", func(t *testing.T) {
		admin := &User{Role: RoleAdmin, TeamID: "t-admin"}
		assert.Equal(t, "t9", admin.ScopedTeamID("t9"))
		assert.Equal(t, "", admin.ScopedTeamID(""))
	})

	t.Run("manager is pinned to their own team", func(t *testing.T) {
		manager := &User{Role: RoleManager, TeamID: "t1"}
		assert.Equal(t, "t1", manager.ScopedTeamID("t9"))
		assert.Equal(t, "t1", manager.ScopedTeamID(""))
	})

	t.Run("nil user has no role", func(t *testing.T) {
		var u *User
		assert.False(t, u.IsAdmin())
		assert.False(t, u.IsManager())
	})
}
