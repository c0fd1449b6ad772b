package authroles

import (
	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
)

// StaticRoleMapper maps provider groups to application roles by simple
// string membership rules. Admin membership wins over user membership.
type StaticRoleMapper struct {
	AdminGroup string
	UserGroup  string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.UserGroup != "" && g == m.UserGroup {
			return domainauth.RoleUser
		}
	}
	return domainauth.RoleGuest
}
