package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewIsolatedLogger(path)

	l.Info("HUB", "client registered", map[string]interface{}{"user_id": "u-1"})
	l.Error("HUB", "redis publish failed", map[string]interface{}{"error": errors.New("boom")})
	l.Debug("HUB", "below file level", nil)
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"module":"HUB"`)
	assert.Contains(t, lines[0], `"message":"client registered"`)
	assert.Contains(t, lines[1], `"error_ref":"boom"`)
}

func TestNopLoggerAcceptsNilDetails(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Warn("TEST", "nothing", nil)
	})
}
