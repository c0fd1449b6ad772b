package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	plain := NotFound("car not found")
	assert.Equal(t, "car not found", plain.Error())

	wrapped := Wrap(errors.New("connection refused"), ErrCodeBackend, "fetch cars")
	assert.Equal(t, "fetch cars: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeBackend, "request failed")
	assert.ErrorIs(t, err, cause)

	// Wrapping preserves AppError detection through further wrapping.
	outer := fmt.Errorf("handler: %w", err)
	assert.True(t, IsBackend(outer))
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(NotFoundf("car %s", "abc")))
	assert.True(t, IsUnauthorized(Unauthorized("login required")))
	assert.True(t, IsForbidden(Forbidden("admin only")))
	assert.True(t, IsValidation(ValidationField("name", "too long")))
	assert.False(t, IsNotFound(Backend("down")))
	assert.False(t, IsBackend(errors.New("plain")))
}

func TestGetCodeAndField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrCodeValidation, GetCode(ValidationField("name", "bad")))
	assert.Equal(t, "name", GetField(ValidationField("name", "bad")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, "", GetField(errors.New("plain")))

	assert.Nil(t, Wrap(nil, ErrCodeBackend, "ignored"))
}
