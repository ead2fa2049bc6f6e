package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-portal/internal/auth"
	"campus-portal/internal/portal"
	"campus-portal/internal/store"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Should grant admin to the first identity and student after", func(t *testing.T) {
		r := NewStoreResolver(store.NewMemory())

		first, err := r.Resolve(ctx, &auth.Identity{Provider: "anonymous", ProviderUserID: "a"})
		require.NoError(t, err)
		assert.Equal(t, portal.RoleAdmin, first.Role)

		second, err := r.Resolve(ctx, &auth.Identity{Provider: "anonymous", ProviderUserID: "b"})
		require.NoError(t, err)
		assert.Equal(t, portal.RoleStudent, second.Role)

		third, err := r.Resolve(ctx, &auth.Identity{Provider: "password", ProviderUserID: "c@x.edu"})
		require.NoError(t, err)
		assert.Equal(t, portal.RoleStudent, third.Role)
	})

	t.Run("Should be idempotent per identity", func(t *testing.T) {
		mem := store.NewMemory()
		r := NewStoreResolver(mem)

		id := &auth.Identity{Provider: "password", ProviderUserID: "a@x.edu", Email: "a@x.edu"}

		u1, err := r.Resolve(ctx, id)
		require.NoError(t, err)

		u2, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, u1.ID, u2.ID)

		count, err := mem.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Should synthesize a display name when the provider has none", func(t *testing.T) {
		r := NewStoreResolver(store.NewMemory())

		u, err := r.Resolve(ctx, &auth.Identity{Provider: "anonymous", ProviderUserID: "a"})
		require.NoError(t, err)
		assert.NotEmpty(t, u.DisplayName)
	})

	t.Run("Should keep the provider-supplied display name", func(t *testing.T) {
		r := NewStoreResolver(store.NewMemory())

		u, err := r.Resolve(ctx, &auth.Identity{
			Provider:       "google",
			ProviderUserID: "sub-1",
			DisplayName:    "Sarah Johnson",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sarah Johnson", u.DisplayName)
	})

	t.Run("Should fail loudly on nil identity", func(t *testing.T) {
		r := NewStoreResolver(store.NewMemory())

		_, err := r.Resolve(ctx, nil)
		assert.ErrorIs(t, err, portal.ErrProfileLoad)
	})
}

func TestSwitchRole(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*StoreResolver, *portal.User, *portal.User) {
		t.Helper()
		r := NewStoreResolver(store.NewMemory())

		admin, err := r.Resolve(ctx, &auth.Identity{Provider: "anonymous", ProviderUserID: "first"})
		require.NoError(t, err)
		require.Equal(t, portal.RoleAdmin, admin.Role)

		student, err := r.Resolve(ctx, &auth.Identity{Provider: "anonymous", ProviderUserID: "second"})
		require.NoError(t, err)
		return r, admin, student
	}

	t.Run("Should let a user switch their own role and name", func(t *testing.T) {
		r, _, student := setup(t)

		updated, err := r.SwitchRole(ctx, student, "", portal.RoleFaculty, "Prof. Pat")
		require.NoError(t, err)
		assert.Equal(t, portal.RoleFaculty, updated.Role)
		assert.Equal(t, "Prof. Pat", updated.DisplayName)
	})

	t.Run("Should keep the display name when none is given", func(t *testing.T) {
		r, _, student := setup(t)

		updated, err := r.SwitchRole(ctx, student, "", portal.RoleFaculty, "")
		require.NoError(t, err)
		assert.Equal(t, student.DisplayName, updated.DisplayName)
	})

	t.Run("Should require admin to switch another user", func(t *testing.T) {
		r, admin, student := setup(t)

		_, err := r.SwitchRole(ctx, student, admin.ID, portal.RoleStudent, "")
		assert.ErrorIs(t, err, portal.ErrForbidden)

		updated, err := r.SwitchRole(ctx, admin, student.ID, portal.RoleFaculty, "")
		require.NoError(t, err)
		assert.Equal(t, portal.RoleFaculty, updated.Role)
	})

	t.Run("Should reject invalid roles", func(t *testing.T) {
		r, _, student := setup(t)

		_, err := r.SwitchRole(ctx, student, "", portal.Role("superuser"), "")
		assert.ErrorIs(t, err, portal.ErrInvalid)
	})
}
