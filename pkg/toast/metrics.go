package toast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrumentation for a Manager.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "glaze").
	Namespace string

	// Subsystem is the metrics subsystem (default: "toast").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors for notification lifecycle
// events. Attach it to a Manager with WithMetrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	shownTotal   *prometheus.CounterVec
	closedTotal  *prometheus.CounterVec
	removedTotal *prometheus.CounterVec
	active       *prometheus.GaugeVec
}

// NewMetrics creates and registers the notification lifecycle collectors.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "glaze"
	}
	if config.Subsystem == "" {
		config.Subsystem = "toast"
	}
	registry := config.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		shownTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "shown_total",
			Help:        "Total number of notifications shown",
			ConstLabels: config.ConstLabels,
		}, []string{"position", "status"}),

		closedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "closed_total",
			Help:        "Total number of close requests by trigger",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		removedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "removed_total",
			Help:        "Total number of notifications removed after exit",
			ConstLabels: config.ConstLabels,
		}, []string{"position"}),

		active: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active",
			Help:        "Number of currently tracked notifications",
			ConstLabels: config.ConstLabels,
		}, []string{"position"}),
	}
}

func (m *Metrics) notificationShown(p Position, s Status) {
	if m == nil {
		return
	}
	m.shownTotal.WithLabelValues(string(p), string(s)).Inc()
	m.active.WithLabelValues(string(p)).Inc()
}

func (m *Metrics) notificationClosed(reason string) {
	if m == nil {
		return
	}
	m.closedTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) notificationRemoved(p Position) {
	if m == nil {
		return
	}
	m.removedTotal.WithLabelValues(string(p)).Inc()
	m.active.WithLabelValues(string(p)).Dec()
}
