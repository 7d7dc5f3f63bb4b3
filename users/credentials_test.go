package users_test

import (
	"testing"

	"github.com/jrsteele09/go-job-tracker/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialStore(t *testing.T) {
	store := users.NewCredentialStore(bcrypt.MinCost)

	t.Run("verify round trip", func(t *testing.T) {
		for _, pw := range []string{"securepass", "p", "ünïcødé-pässwörd", "with spaces  "} {
			hash, err := store.Hash(pw)
			require.NoError(t, err)
			require.NotEqual(t, pw, hash)
			require.True(t, store.Verify(pw, hash))
			require.False(t, store.Verify(pw+"x", hash))
		}
	})

	t.Run("salted", func(t *testing.T) {
		h1, err := store.Hash("securepass")
		require.NoError(t, err)
		h2, err := store.Hash("securepass")
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})

	t.Run("malformed digest", func(t *testing.T) {
		require.False(t, store.Verify("securepass", ""))
		require.False(t, store.Verify("securepass", "not-a-bcrypt-hash"))
		require.False(t, store.Verify("securepass", "$2a$10$short"))
	})

	t.Run("cost clamped", func(t *testing.T) {
		require.Equal(t, bcrypt.MinCost, users.NewCredentialStore(0).Cost())
		require.Equal(t, bcrypt.MaxCost, users.NewCredentialStore(100).Cost())
	})
}

func TestPackageHelpers(t *testing.T) {
	hash, err := users.HashPassword("securepass")
	require.NoError(t, err)
	require.True(t, users.CheckPasswordHash("securepass", hash))

	u := &users.User{PasswordHash: hash}
	require.True(t, u.CheckPassword("securepass"))
	require.False(t, u.CheckPassword("Securepass"))
}
