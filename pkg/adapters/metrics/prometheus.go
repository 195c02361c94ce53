// Package metrics provides playback metrics implementations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/user/menuvideo/pkg/ports"
)

// Prometheus records playback metrics into a prometheus registry.
type Prometheus struct {
	ticks          *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
	evictions      prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewPrometheus registers the playback collectors with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		ticks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "menuvideo_ticks_total",
			Help: "Playback ticks by outcome",
		}, []string{"outcome"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "menuvideo_texture_cache_lookups_total",
			Help: "Texture cache lookups by result",
		}, []string{"result"}),
		evictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "menuvideo_texture_cache_evictions_total",
			Help: "Texture cache evictions",
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "menuvideo_active_sessions",
			Help: "Playback sessions currently ticking",
		}),
	}
}

func (p *Prometheus) ObserveTick(outcome ports.TickOutcome) {
	p.ticks.WithLabelValues(string(outcome)).Inc()
}

func (p *Prometheus) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

func (p *Prometheus) ObserveEviction() {
	p.evictions.Inc()
}

func (p *Prometheus) SessionStarted() {
	p.activeSessions.Inc()
}

func (p *Prometheus) SessionStopped() {
	p.activeSessions.Dec()
}

var _ ports.PlaybackMetrics = (*Prometheus)(nil)
