package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

func TestCollector_CountsAndObserves(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)

	l := c.Listener("astar")
	l.PathUpdated(core.Path{0, 1})
	l.PathUpdated(core.Path{0, 2})
	c.Observe("astar", OutcomeFound, core.SearchStats{Settled: 7}, 3*time.Millisecond)
	c.Observe("dijkstra", OutcomeUnreachable, core.SearchStats{Settled: 2}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.updates.WithLabelValues("astar")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.updates.WithLabelValues("dijkstra")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("astar", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("dijkstra", OutcomeUnreachable)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.settled))
}

func TestNewCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestWriteText_RoundTrip(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.Observe("dijkstra", OutcomeFound, core.SearchStats{Settled: 5}, time.Millisecond)
	c.Listener("dijkstra").PathUpdated(core.Path{0})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	var p expfmt.TextParser
	families, err := p.TextToMetricFamilies(&buf)
	require.NoError(t, err)

	require.Contains(t, families, "pathrace_runs_total")
	require.Contains(t, families, "pathrace_path_updates_total")
	require.Contains(t, families, "pathrace_settled_vertices")
	require.Contains(t, families, "pathrace_search_duration_seconds")

	runs := families["pathrace_runs_total"].GetMetric()
	require.Len(t, runs, 1)
	assert.Equal(t, 1.0, runs[0].GetCounter().GetValue())
	assert.Equal(t, uint64(1), families["pathrace_settled_vertices"].GetMetric()[0].GetHistogram().GetSampleCount())
}
