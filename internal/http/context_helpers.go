package httpx

import (
	"context"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
)

// sessionKey keys the session value in request contexts. Unexported so no
// other package can collide with it.
type sessionKey struct{}

// SetSessionInContext attaches session to ctx. A nil session leaves ctx
// untouched.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the session carried by ctx, if any.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext is the single-value form of
// GetUserSessionFromContext; it returns nil for anonymous requests.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// IsGuestUser reports whether the request has no usable identity, either
// because no session is attached or the session carries the guest role.
func IsGuestUser(ctx context.Context) bool {
	s, ok := GetUserSessionFromContext(ctx)
	if !ok || s == nil {
		return true
	}
	return s.IsGuest()
}
