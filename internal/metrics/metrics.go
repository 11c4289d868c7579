package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and evaluation counters. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requestCount *prometheus.CounterVec
	evaluations  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_evaluations_total",
				Help: "Total number of résumé evaluations by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.evaluations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Middleware counts every request except scrapes of /metrics.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil || c.Path() == "/metrics" {
			return c.Next()
		}

		err := c.Next()

		// Route pattern, not the raw path
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()

		return err
	}
}

func (m *Metrics) ObserveEvaluation(action, outcome string) {
	if m == nil {
		return
	}
	if action == "" {
		action = "unknown"
	}
	m.evaluations.WithLabelValues(action, outcome).Inc()
}
