package debug

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Image kinds used as the kind label of the image metrics.
const (
	KindImage   = "image"
	KindTexture = "texture"
)

// Metrics records action and resource statistics in a private Prometheus
// registry. A host process may load several plugin modules, so nothing is
// registered with the global registry.
type Metrics struct {
	registry *prometheus.Registry
	enabled  atomic.Bool

	actions   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	instances *prometheus.GaugeVec
	acquired  *prometheus.CounterVec
	released  *prometheus.CounterVec
}

// DefaultMetrics is the process-wide metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates an enabled Metrics with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ofxgo_actions_total",
				Help: "Total number of actions dispatched, by resulting status",
			},
			[]string{"plugin", "action", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ofxgo_action_duration_seconds",
				Help:    "Action dispatch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"plugin", "action"},
		),
		instances: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ofxgo_instances",
				Help: "Live effect instances",
			},
			[]string{"plugin"},
		),
		acquired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ofxgo_images_acquired_total",
				Help: "Images and textures fetched from the host",
			},
			[]string{"kind"},
		),
		released: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ofxgo_images_released_total",
				Help: "Images and textures handed back to the host",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.actions, m.duration, m.instances, m.acquired, m.released)
	m.enabled.Store(true)
	return m
}

// SetEnabled turns recording on or off.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled reports whether recording is on.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// StartAction begins timing an action. The returned func records the action
// with its final status.
func (m *Metrics) StartAction(plugin, action string) func(status string) {
	if !m.enabled.Load() {
		return func(string) {}
	}
	start := time.Now()
	return func(status string) {
		m.duration.WithLabelValues(plugin, action).Observe(time.Since(start).Seconds())
		m.actions.WithLabelValues(plugin, action, status).Inc()
	}
}

// SetInstances records the live instance count of a plugin.
func (m *Metrics) SetInstances(plugin string, n int) {
	if !m.enabled.Load() {
		return
	}
	m.instances.WithLabelValues(plugin).Set(float64(n))
}

// ImageAcquired counts a fetched image or texture.
func (m *Metrics) ImageAcquired(kind string) {
	if !m.enabled.Load() {
		return
	}
	m.acquired.WithLabelValues(kind).Inc()
}

// ImageReleased counts a released image or texture.
func (m *Metrics) ImageReleased(kind string) {
	if !m.enabled.Load() {
		return
	}
	m.released.WithLabelValues(kind).Inc()
}
