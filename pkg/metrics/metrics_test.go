package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncChatMessages(2)
		m.IncGenerated("facebook", 3)
		m.IncOptimized("instagram")
		m.IncSessionConflict()
	})
}

func TestDomainCounters(t *testing.T) {
	m := NewMetrics("flowa")

	m.IncChatMessages(2)
	m.IncGenerated("facebook", 3)
	m.IncGenerated("", 1)
	m.IncSessionConflict()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChatMessages))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GeneratedContent.WithLabelValues("facebook")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeneratedContent.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionConflicts))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := NewMetrics("flowa")

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/chat/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusForbidden)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/chat/123", nil))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/chat/:id", "403")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsCount.WithLabelValues("GET", "/chat/:id", "403")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "flowa_http_requests_total")
	assert.Contains(t, string(body), "flowa_session_conflicts_total")
}
