package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// ErrNilGraph indicates that NewCanvas was given a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

// Canvas is a raster drawing of one graph.
type Canvas struct {
	mu      sync.Mutex
	g       *core.Graph
	dc      *gg.Context
	cfg     config
	updates int
}

// NewCanvas draws g onto a fresh canvas. Without WithSize the canvas fits
// the graph bounds plus DefaultMargin.
func NewCanvas(g *core.Graph, opts ...Option) (*Canvas, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)
	if cfg.width == 0 {
		b := g.Bounds()
		cfg.width = int(math.Ceil(b.Max.X())) + 2*DefaultMargin
		cfg.height = int(math.Ceil(b.Max.Y())) + 2*DefaultMargin
	}

	c := &Canvas{
		g:   g,
		dc:  gg.NewContext(cfg.width, cfg.height),
		cfg: cfg,
	}
	c.drawGraph()

	return c, nil
}

// Size returns the canvas width and height in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.cfg.width, c.cfg.height
}

// Updates returns how many path updates the canvas listeners have drawn.
func (c *Canvas) Updates() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updates
}

// Reset clears every overlay and redraws the bare graph.
func (c *Canvas) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updates = 0
	c.drawGraph()
}

// DrawPath strokes p in col and redraws the discs it passes through.
// A path that does not follow edges of the graph is rejected.
func (c *Canvas) DrawPath(p core.Path, col color.Color) error {
	if math.IsInf(p.Cost(c.g), 1) {
		return fmt.Errorf("render: path %v is not a route in the graph", p)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.strokePath(p, col, c.cfg.pathWidth)

	return nil
}

// Listener returns a core.Listener that draws each improved path in col with
// a thin stroke. Safe to hand to engines running on other goroutines.
func (c *Canvas) Listener(col color.Color) core.Listener {
	return core.ListenerFunc(func(p core.Path) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.updates++
		c.strokePath(p, col, c.cfg.updateWidth)
	})
}

// Image returns a snapshot of the current drawing.
func (c *Canvas) Image() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	src := c.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	return dst
}

// SavePNG writes the drawing to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// EncodePNG writes the drawing as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dc.EncodePNG(w)
}

// drawGraph paints background, edges, then vertices. Callers hold mu or own c.
func (c *Canvas) drawGraph() {
	dc := c.dc
	dc.SetColor(c.cfg.background)
	dc.Clear()

	dc.SetColor(EdgeColor)
	dc.SetLineWidth(DefaultEdgeWidth)
	var a, b orb.Point
	for _, e := range c.g.Edges() {
		a, b = c.g.Point(e.From), c.g.Point(e.To)
		dc.DrawLine(a.X(), a.Y(), b.X(), b.Y())
		dc.Stroke()
	}

	for i := 0; i < c.g.VertexCount(); i++ {
		c.drawVertex(i)
	}
}

func (c *Canvas) drawVertex(i int) {
	p := c.g.Point(i)
	c.dc.SetColor(VertexColor)
	c.dc.DrawCircle(p.X(), p.Y(), DefaultVertexSize)
	c.dc.Fill()
	if c.cfg.labels {
		c.dc.SetColor(LabelColor)
		c.dc.DrawStringAnchored(strconv.Itoa(i), p.X(), p.Y(), 0.5, 0.5)
	}
}

func (c *Canvas) strokePath(p core.Path, col color.Color, width float64) {
	if len(p) == 0 {
		return
	}
	dc := c.dc
	dc.SetColor(col)
	dc.SetLineWidth(width)
	first := c.g.Point(p[0])
	dc.MoveTo(first.X(), first.Y())
	for _, v := range p[1:] {
		q := c.g.Point(v)
		dc.LineTo(q.X(), q.Y())
	}
	dc.Stroke()

	for _, v := range p {
		c.drawVertex(v)
	}
}
