package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "priming",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "priming",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "priming",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	dbPool = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "priming",
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Connection pool state by kind (open, in_use, idle).",
		},
		[]string{"state"},
	)

	dbWaitCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "priming",
			Subsystem: "db",
			Name:      "pool_wait_count",
			Help:      "Total number of connections waited for.",
		},
	)

	dbUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "priming",
			Subsystem: "db",
			Name:      "up",
			Help:      "1 when the last database ping succeeded.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		dbPool,
		dbWaitCount,
		dbUp,
	)
}

// Handler exposes Registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Middleware records request count and latency labelled by route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpInFlight.Inc()
		start := time.Now()
		err := c.Next()
		httpInFlight.Dec()

		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var sc interface{ StatusCode() int }
			var fe *fiber.Error
			switch {
			case errors.As(err, &sc):
				status = sc.StatusCode()
			case errors.As(err, &fe):
				status = fe.Code
			}
		}
		httpRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObservePool copies database/sql pool stats into the gauges.
func ObservePool(stats sql.DBStats, pingErr error) {
	dbPool.WithLabelValues("open").Set(float64(stats.OpenConnections))
	dbPool.WithLabelValues("in_use").Set(float64(stats.InUse))
	dbPool.WithLabelValues("idle").Set(float64(stats.Idle))
	dbWaitCount.Set(float64(stats.WaitCount))
	if pingErr != nil {
		dbUp.Set(0)
		return
	}
	dbUp.Set(1)
}
