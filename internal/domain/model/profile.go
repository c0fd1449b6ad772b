//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/hamzanaeem10/auto-suite-space/internal/errors"
)

const maxProfileNameLen = 120

// ProfileRole is the authorization role carried on a profile record.
type ProfileRole string

const (
	ProfileRoleUser  ProfileRole = "user"
	ProfileRoleAdmin ProfileRole = "admin"
)

// IsAdmin reports whether the role grants access to the admin dashboard.
func (r ProfileRole) IsAdmin() bool { return r == ProfileRoleAdmin }

// Profile represents a user account record owned by the backend. The ID
// matches the authenticated identity; email is read-only once set.
type Profile struct {
	ID    string      `json:"id"`
	Name  *string     `json:"name,omitempty"`
	Email *string     `json:"email,omitempty"`
	Role  ProfileRole `json:"role"`
}

// DisplayName returns the profile name or empty when unset.
func (p Profile) DisplayName() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// EmailOrEmpty returns the profile email or empty when unset.
func (p Profile) EmailOrEmpty() string {
	if p.Email == nil {
		return ""
	}
	return *p.Email
}

// UpdateProfileRequest carries the only profile mutation this application
// performs: an identifier-targeted name update. Email is never writable
// through this path.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// Validate trims the name and enforces the length cap. An empty name is
// permitted; whitespace trimming is the only local validation.
func (r *UpdateProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if utf8.RuneCountInString(r.Name) > maxProfileNameLen {
		return apperrors.ValidationField("name", "name cannot exceed 120 characters")
	}
	return nil
}
