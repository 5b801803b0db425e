package form

import (
	"testing"

	"github.com/crisvega/userhub/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestApplyServerResult(t *testing.T) {
	base := []user.User{
		{ID: 1, Login: "ana"},
		{ID: 2, Login: "bob"},
	}

	t.Run("registered_appends", func(t *testing.T) {
		got := ApplyServerResult(base, Result{Registered: &user.User{ID: 3, Login: "eve"}})

		assert.Len(t, got, 3)
		assert.Equal(t, 3, got[2].ID)
		assert.Len(t, base, 2, "input must not be mutated")
	})

	t.Run("updated_replaces_by_id", func(t *testing.T) {
		got := ApplyServerResult(base, Result{Updated: &user.User{ID: 2, Login: "bobby"}})

		assert.Len(t, got, 2)
		assert.Equal(t, "bobby", got[1].Login)
		assert.Equal(t, "bob", base[1].Login, "input must not be mutated")
	})

	t.Run("updated_unknown_id_is_noop", func(t *testing.T) {
		got := ApplyServerResult(base, Result{Updated: &user.User{ID: 99, Login: "ghost"}})

		assert.Equal(t, base, got)
	})

	t.Run("deleted_removes_by_id", func(t *testing.T) {
		got := ApplyServerResult(base, Result{Deleted: &user.User{ID: 1}})

		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("empty_result_copies", func(t *testing.T) {
		got := ApplyServerResult(base, Result{})

		assert.Equal(t, base, got)

		got[0].Login = "mutated"
		assert.Equal(t, "ana", base[0].Login)
	})
}
