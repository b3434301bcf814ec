package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      *Error
		expected int
	}{
		{NotFound("Chat not found"), 404},
		{Validation("bad"), 400},
		{Unauthorized("no token"), 401},
		{Forbidden("not yours"), 403},
		{Conflict("stale"), 409},
		{Upstream(errors.New("timeout"), "generator failed"), 502},
		{Internal(errors.New("boom")), 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Status())
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("loading session: %w", NotFound("Chat not found"))

	assert.True(t, errors.Is(err, New(ErrNotFound, "")))
	assert.False(t, errors.Is(err, New(ErrForbidden, "")))
	assert.True(t, HasCode(err, ErrNotFound))
}

func TestInternalKeepsMessage(t *testing.T) {
	err := Internal(errors.New("connection refused"))

	assert.Equal(t, "connection refused", err.Message)
	assert.Contains(t, fmt.Sprintf("%+v", err.Cause), "apperror_test.go")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "x"))
	assert.Nil(t, Internal(nil))
}
