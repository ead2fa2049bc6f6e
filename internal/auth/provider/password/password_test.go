package password

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should register and authenticate with the same identity", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		reg, err := svc.Register(ctx, "Pat@X.edu", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "password", reg.Provider)
		assert.Equal(t, "pat@x.edu", reg.ProviderUserID)

		got, err := svc.Authenticate(ctx, "pat@x.edu", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, reg.ProviderUserID, got.ProviderUserID)
	})

	t.Run("Should reject duplicate registration", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		_, err := svc.Register(ctx, "a@x.edu", "secret-password")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "A@x.edu", "another-password")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("Should collapse all failures into invalid credentials", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		_, err := svc.Register(ctx, "a@x.edu", "secret-password")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "a@x.edu", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "nobody@x.edu", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		_, err := svc.Register(ctx, "a@x.edu", "short")
		assert.Error(t, err)
	})
}
