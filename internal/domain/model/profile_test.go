package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/hamzanaeem10/auto-suite-space/internal/errors"
)

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	req := UpdateProfileRequest{Name: "  Jane Doe  "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Jane Doe", req.Name)

	// Empty names are allowed; trimming is the only local validation.
	empty := UpdateProfileRequest{Name: "   "}
	assert.NoError(t, empty.Validate())
	assert.Equal(t, "", empty.Name)

	long := UpdateProfileRequest{Name: strings.Repeat("x", 121)}
	err := long.Validate()
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProfile_Accessors(t *testing.T) {
	t.Parallel()

	name := "Jane Doe"
	email := "jane@example.com"
	p := Profile{Name: &name, Email: &email, Role: ProfileRoleAdmin}
	assert.Equal(t, "Jane Doe", p.DisplayName())
	assert.Equal(t, "jane@example.com", p.EmailOrEmpty())
	assert.True(t, p.Role.IsAdmin())

	empty := Profile{Role: ProfileRoleUser}
	assert.Equal(t, "", empty.DisplayName())
	assert.Equal(t, "", empty.EmailOrEmpty())
	assert.False(t, empty.Role.IsAdmin())
}
