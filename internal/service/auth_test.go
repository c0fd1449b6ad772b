package service

import (
	"context"
	"errors"
	"testing"
	"time"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	mocks "github.com/hamzanaeem10/auto-suite-space/internal/mocks/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *mocks.MockAuthProvider, *mocks.MemorySessionStore) {
	provider := mocks.NewMockAuthProvider()
	store := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: store,
		Roles:    mocks.StaticRoleMapper{AdminGroup: "admins", UserGroup: "users"},
	})
	return svc, provider, store
}

func TestAuthService_BeginLogin(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)
}

func TestAuthService_BeginLogin_RequiresRedirect(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()

	_, err := svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthService_CompleteLogin(t *testing.T) {
	t.Parallel()
	svc, _, store := newTestAuthService()

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "mock-user-1", result.Session.UserID)
	assert.Equal(t, "Mock User", result.Session.Name)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)

	saved, err := store.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session, saved)
}

func TestAuthService_CompleteLogin_ValidatesInput(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CompleteLogin(ctx, CompleteLoginInput{State: "s", Nonce: "n"})
	assert.Error(t, err)
	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", Nonce: "n"})
	assert.Error(t, err)
	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s"})
	assert.Error(t, err)
}

func TestAuthService_CompleteLogin_ExchangeFailure(t *testing.T) {
	t.Parallel()
	svc, provider, _ := newTestAuthService()
	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("idp unavailable")
	}

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "s", Nonce: "n",
	})
	assert.ErrorContains(t, err, "exchange authorization code")
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	t.Parallel()
	svc, _, store := newTestAuthService()
	ctx := context.Background()

	expired := domainauth.Session{
		ID: "old", UserID: "u1", Role: domainauth.RoleUser,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, store.Save(ctx, expired))

	_, err := svc.GetSession(ctx, "old")
	require.Error(t, err)

	// Expired session is removed on access.
	_, err = store.Get(ctx, "old")
	assert.ErrorIs(t, err, mocks.ErrNotFound)
}

func TestAuthService_Logout_EmptyIDIsNoop(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_Subscribe_ReceivesLoginAndLogout(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	events, cancel := svc.Subscribe()
	defer cancel()

	result, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, domainauth.SessionEstablished, ev.Kind)
		assert.Equal(t, result.Session.ID, ev.Session.ID)
	case <-time.After(time.Second):
		t.Fatal("no session established event")
	}

	require.NoError(t, svc.Logout(ctx, result.Session.ID))

	select {
	case ev := <-events:
		assert.Equal(t, domainauth.SessionCleared, ev.Kind)
		assert.Equal(t, result.Session.ID, ev.Session.ID)
	case <-time.After(time.Second):
		t.Fatal("no session cleared event")
	}
}

func TestAuthService_Subscribe_CancelStopsDelivery(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()

	events, cancel := svc.Subscribe()
	cancel()

	// Channel is closed after cancel; publishing must not panic.
	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	_, open := <-events
	assert.False(t, open)
}

func TestAuthService_Subscribe_SlowSubscriberDropsEvents(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, cancel := svc.Subscribe()
	defer cancel()

	// More logins than the subscriber buffer; none may block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 20 {
			_, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
			assert.NoError(t, err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("login flow blocked on slow subscriber")
	}
}
