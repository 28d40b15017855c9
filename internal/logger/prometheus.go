package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	statementsOnce sync.Once              //nolint:gochecknoglobals
	statements     *prometheus.CounterVec //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || h.counter == nil {
		return
	}

	h.counter.WithLabelValues(level.String()).Inc()
}

// NewPrometheusHook returns a hook exposed as madrasa_log_statements_total{service,level}.
// The counter is registered on the first call; the service label of that call sticks.
func NewPrometheusHook(service string) PrometheusHook {
	statementsOnce.Do(func() {
		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "madrasa",
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"service": service},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{counter: statements}
}
