package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/render"
)

func line(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New([]orb.Point{{20.5, 20.5}, {80.5, 20.5}, {80.5, 60.5}}, [2]int{0, 1}, [2]int{1, 2})
	require.NoError(t, err)

	return g
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()

	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// assertColor compares colors with a small per-channel tolerance for antialiasing.
func assertColor(t *testing.T, want, got color.Color, msg string) {
	t.Helper()
	w, g := rgba(want), rgba(got)
	assert.InDelta(t, float64(w.R), float64(g.R), 8, msg)
	assert.InDelta(t, float64(w.G), float64(g.G), 8, msg)
	assert.InDelta(t, float64(w.B), float64(g.B), 8, msg)
}

func TestNewCanvas(t *testing.T) {
	_, err := render.NewCanvas(nil)
	assert.ErrorIs(t, err, render.ErrNilGraph)

	c, err := render.NewCanvas(line(t), render.WithoutLabels())
	require.NoError(t, err)
	w, h := c.Size()
	assert.Equal(t, 81+2*render.DefaultMargin, w)
	assert.Equal(t, 61+2*render.DefaultMargin, h)

	img := c.Image()
	assertColor(t, render.VertexColor, img.At(20, 20), "vertex disc")
	assertColor(t, render.EdgeColor, img.At(50, 20), "edge 0-1")
	assertColor(t, color.White, img.At(40, 50), "background")
}

func TestCanvas_DrawPath(t *testing.T) {
	c, err := render.NewCanvas(line(t), render.WithSize(100, 100), render.WithoutLabels())
	require.NoError(t, err)

	require.NoError(t, c.DrawPath(core.Path{0, 1, 2}, render.AStarColor))
	assertColor(t, render.AStarColor, c.Image().At(50, 20), "horizontal hop")
	assertColor(t, render.AStarColor, c.Image().At(80, 40), "vertical hop")

	assert.Error(t, c.DrawPath(core.Path{0, 2}, render.AStarColor), "0-2 is not an edge")
	assert.Error(t, c.DrawPath(core.Path{0, 9}, render.AStarColor))

	c.Reset()
	assertColor(t, render.EdgeColor, c.Image().At(50, 20), "overlay cleared")
}

func TestCanvas_ListenerIsSafeForConcurrentEngines(t *testing.T) {
	c, err := render.NewCanvas(line(t))
	require.NoError(t, err)
	d, a := c.Listener(render.DijkstraColor), c.Listener(render.AStarColor)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); d.PathUpdated(core.Path{0, 1}) }()
		go func() { defer wg.Done(); a.PathUpdated(core.Path{0, 1, 2}) }()
	}
	wg.Wait()
	assert.Equal(t, 100, c.Updates())
}

func TestCanvas_PNG(t *testing.T) {
	c, err := render.NewCanvas(line(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	w, h := c.Size()
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "graph.png")
	require.NoError(t, c.SavePNG(path))
	assert.FileExists(t, path)

	assert.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "graph.png")))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithBackground(nil) })
	assert.Panics(t, func() { render.WithPathWidth(0) })
}
