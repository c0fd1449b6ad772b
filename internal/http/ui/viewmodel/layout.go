// Package viewmodel holds the data shapes shared between page handlers and
// the layout template.
package viewmodel

// User is the slice of the session identity the chrome renders: the
// account menu label and the values the profile screen pre-fills.
type User struct {
	Name  string
	Email string
	Role  string
}

// Layout is the shared page chrome: document title, heading, active nav
// entry, CSRF token for forms, and the auth and viewport flags that decide
// which navigation variant renders.
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdmin         bool
	IsMobile        bool
	User            *User
}

// LayoutProvider is implemented by page data structs that embed layout
// chrome, letting the renderer extract it without knowing the page type.
type LayoutProvider interface {
	LayoutData() *Layout
}
