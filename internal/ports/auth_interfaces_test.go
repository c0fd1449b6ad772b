package ports_test

import (
	"testing"

	mocks "github.com/hamzanaeem10/auto-suite-space/internal/mocks/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/ports"
)

// Compile-time conformance of the auth test doubles to the port interfaces.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.AuthProvider = (*mocks.MockAuthProvider)(nil)
	var _ ports.SessionStore = (*mocks.MemorySessionStore)(nil)
	var _ ports.RoleMapper = (*mocks.StaticRoleMapper)(nil)
}
