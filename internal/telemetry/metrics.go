// Package telemetry exposes prometheus metrics for screen assembly and
// handler activity.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "discovery"

// Metrics holds all collectors. Each instance owns its registry so tests and
// multiple consoles never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	Builds        *prometheus.CounterVec
	BuildFailures *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec
	Events        *prometheus.CounterVec
	DoorRequests  *prometheus.CounterVec
	Presented     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	builds := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Total number of components built",
		},
		[]string{"component"},
	)

	buildFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures_total",
			Help:      "Total number of failed component builds",
		},
		[]string{"component"},
	)

	buildDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Component build duration in seconds, dependencies included",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"component"},
	)

	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of events handled",
		},
		[]string{"handler", "event"},
	)

	doorRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "door_requests_total",
			Help:      "Total number of pod bay door requests by outcome",
		},
		[]string{"outcome"},
	)

	presented := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screens_presented_total",
			Help:      "Total number of screens pushed onto the console",
		},
		[]string{"screen"},
	)

	registry.MustRegister(
		builds,
		buildFailures,
		buildDuration,
		events,
		doorRequests,
		presented,
	)

	return &Metrics{
		registry:      registry,
		Builds:        builds,
		BuildFailures: buildFailures,
		BuildDuration: buildDuration,
		Events:        events,
		DoorRequests:  doorRequests,
		Presented:     presented,
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Built implements assembly.Observer.
func (m *Metrics) Built(component string, elapsed time.Duration) {
	m.Builds.WithLabelValues(component).Inc()
	m.BuildDuration.WithLabelValues(component).Observe(elapsed.Seconds())
}

// Failed implements assembly.Observer.
func (m *Metrics) Failed(component string, _ error) {
	m.BuildFailures.WithLabelValues(component).Inc()
}

func (m *Metrics) Event(handler, event string) {
	m.Events.WithLabelValues(handler, event).Inc()
}

func (m *Metrics) DoorRequest(outcome string) {
	m.DoorRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ScreenPresented(screen string) {
	m.Presented.WithLabelValues(screen).Inc()
}
