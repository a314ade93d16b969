// Package metrics exports Prometheus instruments for path-finding runs.
//
// A Collector counts runs per algorithm and outcome, counts every path update
// an engine streams, and keeps histograms of settled vertices and wall-clock
// search time. All instruments are labeled by algorithm ("dijkstra", "astar").
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

const namespace = "pathrace"

// Run outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeFailed      = "failed"
)

// Collector owns the pathrace instruments. Its methods are safe for
// concurrent use.
type Collector struct {
	runs     *prometheus.CounterVec
	updates  *prometheus.CounterVec
	settled  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewCollector creates the instruments and registers them with reg.
// A nil reg leaves them unregistered (useful in tests and one-off runs).
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed searches by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_updates_total",
			Help:      "Improved paths streamed to listeners.",
		}, []string{"algorithm"}),
		settled: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settled_vertices",
			Help:      "Vertices finalized per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time of one search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
	}
	if reg == nil {
		return c, nil
	}

	for _, col := range []prometheus.Collector{c.runs, c.updates, c.settled, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Listener returns a core.Listener that counts path updates for algorithm.
func (c *Collector) Listener(algorithm string) core.Listener {
	counter := c.updates.WithLabelValues(algorithm)

	return core.ListenerFunc(func(core.Path) {
		counter.Inc()
	})
}

// Observe records one finished search.
func (c *Collector) Observe(algorithm, outcome string, stats core.SearchStats, elapsed time.Duration) {
	c.runs.WithLabelValues(algorithm, outcome).Inc()
	c.settled.WithLabelValues(algorithm).Observe(float64(stats.Settled))
	c.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// WriteText gathers g and writes the Prometheus text exposition format to w.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
