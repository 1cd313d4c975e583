package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_requests_total",
		Help: "Storefront requests by route and status.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_request_duration_seconds",
		Help:    "Storefront request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_requests_total",
		Help: "Calls to the commerce API by endpoint and status class.",
	}, []string{"method", "endpoint", "class"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_upstream_duration_seconds",
		Help:    "Latency of calls to the commerce API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "storefront_upstream_breaker_state",
		Help: "0 closed, 1 half-open, 2 open.",
	}, []string{"name"})

	SearchesSuperseded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_search_superseded_total",
		Help: "Debounced searches dropped in favour of a newer query.",
	})

	CartRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_rollbacks_total",
		Help: "Optimistic cart updates reverted after an upstream failure.",
	})
)

// Middleware records request counts and latency per registered route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// StatusClass collapses an HTTP status into "2xx", "4xx", ... or "error".
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
