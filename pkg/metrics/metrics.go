package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and domain collectors. All recording methods are
// safe on a nil receiver so callers can run without metrics.
type Metrics struct {
	registry *prometheus.Registry

	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ErrorsCount     *prometheus.CounterVec

	ChatMessages     prometheus.Counter
	GeneratedContent *prometheus.CounterVec
	OptimizedContent *prometheus.CounterVec
	SessionConflicts prometheus.Counter
}

func NewMetrics(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ErrorsCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Subsystem: "http",
				Name:      "errors_total",
				Help:      "Total number of HTTP responses with status >= 400",
			},
			[]string{"method", "route", "status"},
		),
		ChatMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "chat_messages_total",
			Help:      "Messages appended to chat sessions",
		}),
		GeneratedContent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "generated_content_total",
				Help:      "Generated content entries appended to the ledger",
			},
			[]string{"platform"},
		),
		OptimizedContent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "optimized_content_total",
				Help:      "Optimized content entries appended to the ledger",
			},
			[]string{"platform"},
		),
		SessionConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "session_conflicts_total",
			Help:      "Chat session writes rejected for a stale version",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCount,
		m.RequestDuration,
		m.ErrorsCount,
		m.ChatMessages,
		m.GeneratedContent,
		m.OptimizedContent,
		m.SessionConflicts,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware records count, latency and errors per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := ctx.Route().Path
		method := ctx.Method()
		code := strconv.Itoa(status)

		m.RequestCount.WithLabelValues(method, route, code).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if status >= fiber.StatusBadRequest {
			m.ErrorsCount.WithLabelValues(method, route, code).Inc()
		}

		return err
	}
}

func (m *Metrics) IncChatMessages(n int) {
	if m == nil {
		return
	}
	m.ChatMessages.Add(float64(n))
}

func (m *Metrics) IncGenerated(platform string, n int) {
	if m == nil {
		return
	}
	m.GeneratedContent.WithLabelValues(platformLabel(platform)).Add(float64(n))
}

func (m *Metrics) IncOptimized(platform string) {
	if m == nil {
		return
	}
	m.OptimizedContent.WithLabelValues(platformLabel(platform)).Inc()
}

func (m *Metrics) IncSessionConflict() {
	if m == nil {
		return
	}
	m.SessionConflicts.Inc()
}

func platformLabel(platform string) string {
	if platform == "" {
		return "none"
	}
	return platform
}
