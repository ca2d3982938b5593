package pipeline

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// Metric labels.
const (
	LabelService = "service"
	LabelRequest = "request"
	LabelStatus  = "status"
	LabelCode    = "code"
)

// Status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the Prometheus collectors of the request pipeline.
type Metrics struct {
	namespace   string
	subsystem   string
	serviceName string

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// MetricsOption configures Metrics.
type MetricsOption func(*Metrics)

func WithNamespace(namespace string) MetricsOption {
	return func(m *Metrics) {
		m.namespace = namespace
	}
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(m *Metrics) {
		m.subsystem = subsystem
	}
}

// WithMetricsServiceName sets the service label.
func WithMetricsServiceName(name string) MetricsOption {
	return func(m *Metrics) {
		m.serviceName = name
	}
}

func NewMetrics(opts ...MetricsOption) *Metrics {
	m := &Metrics{
		namespace:   "fluentutils",
		serviceName: "unknown",
	}

	for _, opt := range opts {
		opt(m)
	}

	m.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of requests handled.",
		},
		[]string{LabelService, LabelRequest, LabelStatus},
	)

	m.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of request handling in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelService, LabelRequest},
	)

	m.requestsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_in_flight",
			Help:      "Number of requests currently being handled.",
		},
		[]string{LabelService, LabelRequest},
	)

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_errors_total",
			Help:      "Total number of failed results by error code.",
		},
		[]string{LabelService, LabelRequest, LabelCode},
	)

	return m
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.errorsTotal,
	}
}

// Register registers every collector with registerer.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Metered records count, duration, in-flight requests and error codes.
func Metered[Req, Res any](m *Metrics) Behaviour[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) monad.Result[Res] {
			name := RequestName(req)

			inFlight := m.requestsInFlight.WithLabelValues(m.serviceName, name)
			inFlight.Inc()
			defer inFlight.Dec()

			start := time.Now()
			res := next(ctx, req)
			m.requestDuration.WithLabelValues(m.serviceName, name).Observe(time.Since(start).Seconds())

			status := StatusSuccess
			if !res.IsOk() {
				status = StatusError
				m.errorsTotal.WithLabelValues(m.serviceName, name, res.Err().Code.String()).Inc()
			}
			m.requestsTotal.WithLabelValues(m.serviceName, name, status).Inc()

			return res
		}
	}
}
