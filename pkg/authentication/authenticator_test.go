package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heritagexp/heritage-explorer/pkg/storage"
	"github.com/heritagexp/heritage-explorer/pkg/users"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, *users.Registry) {
	t.Helper()
	registry := users.NewRegistry(storage.NewMemoryStore())
	return NewAuthenticator(registry, nil, 0), registry
}

func TestAuthenticator_LoginSuccess(t *testing.T) {
	auth, _ := newTestAuthenticator(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, Registration{
		Name:     "Alice",
		Email:    "a@b.com",
		Password: "Secret1A",
		Role:     users.RoleVisitor,
	})
	require.NoError(t, err)

	profile, err := auth.Login(ctx, "a@b.com", "Secret1A")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, users.RoleVisitor, profile.Role)
	assert.NotEmpty(t, profile.ID)
}

func TestAuthenticator_LoginFailure(t *testing.T) {
	auth, registry := newTestAuthenticator(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, Registration{Name: "Alice", Email: "a@b.com", Password: "Secret1A"})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "a@b.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, "Invalid email or password", Message(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@b.com", "Secret1A")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("case-sensitive email", func(t *testing.T) {
		_, err := auth.Login(ctx, "A@B.com", "Secret1A")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("no mutation on failure", func(t *testing.T) {
		assert.Equal(t, 1, registry.Len())
	})
}

func TestAuthenticator_RegisterDuplicate(t *testing.T) {
	auth, registry := newTestAuthenticator(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, Registration{Name: "Alice", Email: "a@b.com", Password: "Secret1A"})
	require.NoError(t, err)

	_, err = auth.Register(ctx, Registration{Name: "Imposter", Email: "a@b.com", Password: "Other1Aa"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, "Email already registered", Message(err))
	assert.Equal(t, 1, registry.Len())
}

func TestAuthenticator_RegisterHashesPassword(t *testing.T) {
	auth, registry := newTestAuthenticator(t)

	_, err := auth.Register(context.Background(), Registration{Name: "Alice", Email: "a@b.com", Password: "Secret1A"})
	require.NoError(t, err)

	stored, err := registry.FindByEmail("a@b.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1A", stored.PasswordHash)
	assert.Contains(t, stored.PasswordHash, "$argon2id$")
}

func TestAuthenticator_DefaultRole(t *testing.T) {
	auth, _ := newTestAuthenticator(t)

	profile, err := auth.Register(context.Background(), Registration{Name: "Alice", Email: "a@b.com", Password: "Secret1A"})
	require.NoError(t, err)
	assert.Equal(t, users.RoleVisitor, profile.Role)
}

func TestAuthenticator_Latency(t *testing.T) {
	registry := users.NewRegistry(storage.NewMemoryStore())
	auth := NewAuthenticator(registry, nil, 50*time.Millisecond)

	t.Run("operations wait out the delay", func(t *testing.T) {
		start := time.Now()
		_, _ = auth.Login(context.Background(), "a@b.com", "x")
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("context cancellation cuts the wait short", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		_, err := auth.Login(ctx, "a@b.com", "x")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
