package render

import (
	"image/color"
)

// Default drawing parameters.
const (
	DefaultMargin      = 10
	DefaultVertexSize  = 7.0
	DefaultEdgeWidth   = 1.0
	DefaultPathWidth   = 3.0
	DefaultUpdateWidth = 1.5
)

// Colors of the base drawing.
var (
	EdgeColor   color.Color = color.Black
	VertexColor color.Color = color.RGBA{R: 0xff, A: 0xff}
	LabelColor  color.Color = color.White
)

// Suggested overlay colors for the two engines.
var (
	DijkstraColor color.Color = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}
	AStarColor    color.Color = color.RGBA{R: 0x22, G: 0xb1, B: 0x4c, A: 0xff}
)

type config struct {
	width, height int // 0 means "fit the graph"
	background    color.Color
	pathWidth     float64
	updateWidth   float64
	labels        bool
}

// Option customizes a Canvas.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		background:  color.White,
		pathWidth:   DefaultPathWidth,
		updateWidth: DefaultUpdateWidth,
		labels:      true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize fixes the canvas size in pixels. Panics if either side is not positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize requires positive sides")
	}

	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithBackground sets the fill color. Panics on nil.
func WithBackground(bg color.Color) Option {
	if bg == nil {
		panic("render: WithBackground(nil)")
	}

	return func(c *config) {
		c.background = bg
	}
}

// WithPathWidth sets the stroke width of DrawPath. Panics if w <= 0.
func WithPathWidth(w float64) Option {
	if w <= 0 {
		panic("render: WithPathWidth(w<=0)")
	}

	return func(c *config) {
		c.pathWidth = w
	}
}

// WithoutLabels skips the vertex index labels.
func WithoutLabels() Option {
	return func(c *config) {
		c.labels = false
	}
}
