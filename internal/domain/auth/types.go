package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Identity represents the authenticated principal returned by the backend's
// identity provider. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (sub)
	Name      string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// SessionEventKind identifies what happened to a session.
type SessionEventKind string

const (
	// SessionEstablished fires when a login completes and a session is persisted.
	SessionEstablished SessionEventKind = "established"
	// SessionCleared fires when a session is removed (logout or expiry cleanup).
	SessionCleared SessionEventKind = "cleared"
)

// SessionEvent is delivered to session-change subscribers.
type SessionEvent struct {
	Kind    SessionEventKind
	Session Session
}
