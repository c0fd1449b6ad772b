package auth

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	_, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", identity.UserID)
	assert.Equal(t, "Mock User", identity.Name)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserID: "u1", Role: domainauth.RoleUser}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore_SaveRequiresID(t *testing.T) {
	store := NewMemorySessionStore()
	assert.Error(t, store.Save(context.Background(), domainauth.Session{}))
}

func TestStaticRoleMapper(t *testing.T) {
	mapper := StaticRoleMapper{AdminGroup: "admins", UserGroup: "users"}

	assert.Equal(t, domainauth.RoleAdmin, mapper.Map([]string{"users", "admins"}))
	assert.Equal(t, domainauth.RoleUser, mapper.Map([]string{"users"}))
	assert.Equal(t, domainauth.RoleGuest, mapper.Map([]string{"other"}))
	assert.Equal(t, domainauth.RoleGuest, mapper.Map(nil))
}
