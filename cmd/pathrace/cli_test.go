package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	cmd := NewCommandCLI("pathrace", &out, &errout)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun_Report(t *testing.T) {
	out, err := execute(t, "run", "-n", "30", "-m", "70", "--seed", "3", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "graph: 30 vertices, 70 edges")
	assert.Contains(t, out, "query: 0 -> 29 (termination=settle, heuristic=euclidean)")
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "astar")
	assert.Contains(t, out, "verify: ok")
}

func TestRun_TooManyEdges(t *testing.T) {
	_, err := execute(t, "run", "-n", "4", "-m", "7")
	assert.ErrorContains(t, err, "n(n-1)/2")
}

func TestRun_BadEnums(t *testing.T) {
	_, err := execute(t, "run", "--termination", "never")
	assert.Error(t, err)

	_, err = execute(t, "run", "--heuristic", "octile")
	assert.Error(t, err)

	_, err = execute(t, "run", "--timeout", "-1s")
	assert.Error(t, err)
}

func TestRun_EndpointOutOfRange(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = execute(t, "run", "-n", "5", "-m", "3", "--seed", "1", "--source", "10")
	})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.ErrorContains(t, err, "--source 10")

	require.NotPanics(t, func() {
		_, err = execute(t, "grid", "--width", "130", "--height", "105", "--destination", "-100")
	})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.ErrorContains(t, err, "--destination -70")
}

func TestGrid_MetricsAndPNG(t *testing.T) {
	png := filepath.Join(t.TempDir(), "grid.png")
	out, err := execute(t, "grid", "--width", "130", "--height", "105", "--png", png, "--metrics", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "graph: 30 vertices, 49 edges")
	assert.Contains(t, out, "query: 0 -> 29")
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "180.000", "5 columns right and 4 rows down at 20px")
	assert.Contains(t, out, "pathrace_runs_total")
	assert.Contains(t, out, `pathrace_path_updates_total{algorithm="astar"}`)
	assert.FileExists(t, png)
}

func TestGrid_PickByPosition(t *testing.T) {
	out, err := execute(t, "grid", "--width", "130", "--height", "105", "--from", "27,3", "--to", "86,44")
	require.NoError(t, err)
	// (25,5) is vertex 1; (85,45) is row 2, column 4: 2*6+4.
	assert.Contains(t, out, "query: 1 -> 16")

	_, err = execute(t, "grid", "--width", "130", "--height", "105", "--from", "15,15")
	assert.ErrorContains(t, err, "hits no vertex")

	_, err = execute(t, "grid", "--from", "15")
	assert.ErrorContains(t, err, "want x,y")
}

func TestConfigFileAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "race.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("vertices: 12\nedges: 20\nseed: 9\n"), 0o600))

	out, err := execute(t, "run", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 12 vertices, 20 edges")

	t.Setenv("PATHRACE_EDGES", "11")
	out, err = execute(t, "run", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 12 vertices, 11 edges", "environment beats the config file")

	out, err = execute(t, "run", "--config", cfg, "--edges", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: 12 vertices, 5 edges", "flags beat everything")
}

func TestReachTerminationIsNotVerifiedForCost(t *testing.T) {
	o := NewRaceOptions(&bytes.Buffer{}, false)
	o.termination = core.StopOnReach
	assert.False(t, o.exact("dijkstra"))
	assert.True(t, o.exact("astar"), "astar waits for the pop under reach")

	o.termination = core.StopOnSettle
	o.Heuristic = "Manhattan"
	assert.True(t, o.exact("dijkstra"))
	assert.False(t, o.exact("astar"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pathrace dev"))
}
