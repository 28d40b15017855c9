package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of http requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http requests by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Metrics counts requests per route pattern. Requests to the skip paths are not counted.
func Metrics(skip ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, p := range skip {
			if c.Path() == p {
				return c.Next()
			}
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError

			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// the matched pattern keeps ids out of the label values
		route := c.Route().Path

		requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}
