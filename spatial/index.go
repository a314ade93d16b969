package spatial

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// VertexRadius is the radius of a drawn vertex disc; Pick with this radius
// hits exactly the pixels of the disc.
const VertexRadius = 7.0

// R-tree branching factors (2D, min and max entries per node).
const (
	treeMinChildren = 25
	treeMaxChildren = 50
)

// pointTolerance inflates a vertex into a tiny rectangle, since rtreego
// cannot store zero-area rectangles.
const pointTolerance = 1e-6

// ErrNilGraph indicates that NewIndex was given a nil graph.
var ErrNilGraph = errors.New("spatial: graph is nil")

// vertexEntry wraps a vertex for R-tree storage.
type vertexEntry struct {
	index int
	point orb.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (v *vertexEntry) Bounds() rtreego.Rect {
	return v.bbox
}

// Index answers point queries over the vertices of one graph.
type Index struct {
	tree   *rtreego.Rtree
	bounds orb.Bound
}

// NewIndex bulk-loads the vertex coordinates of g into an R-tree.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	entries := make([]rtreego.Spatial, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		entries = append(entries, &vertexEntry{
			index: v.Index,
			point: v.Point,
			bbox:  toPoint(v.Point).ToRect(pointTolerance),
		})
	}

	return &Index{
		tree:   rtreego.NewTree(2, treeMinChildren, treeMaxChildren, entries...),
		bounds: g.Bounds(),
	}, nil
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.tree.Size() }

// Bounds returns the bounding box of all vertices.
func (ix *Index) Bounds() orb.Bound { return ix.bounds }

// Nearest returns the vertex closest to p. ok is false only for an empty index.
func (ix *Index) Nearest(p orb.Point) (vertex int, ok bool) {
	hit := ix.tree.NearestNeighbor(toPoint(p))
	if hit == nil {
		return -1, false
	}

	return hit.(*vertexEntry).index, true
}

// Pick returns the vertex whose disc of the given radius contains p, the
// nearest one if discs overlap. ok is false when p misses every disc.
func (ix *Index) Pick(p orb.Point, radius float64) (vertex int, ok bool) {
	if radius < 0 || math.IsNaN(radius) {
		return -1, false
	}
	hit := ix.tree.NearestNeighbor(toPoint(p))
	if hit == nil {
		return -1, false
	}
	e := hit.(*vertexEntry)
	if planar.Distance(e.point, p) > radius {
		return -1, false
	}

	return e.index, true
}

// Within returns the vertices inside b, boundary included, in ascending order.
func (ix *Index) Within(b orb.Bound) []int {
	rect, err := toRect(b)
	if err != nil {
		return []int{}
	}

	results := ix.tree.SearchIntersect(rect)
	out := make([]int, 0, len(results))
	var e *vertexEntry
	for _, item := range results {
		e = item.(*vertexEntry)
		if b.Contains(e.point) {
			out = append(out, e.index)
		}
	}
	sort.Ints(out)

	return out
}

func toPoint(p orb.Point) rtreego.Point {
	return rtreego.Point{p.X(), p.Y()}
}

// toRect converts b into a search rectangle padded by pointTolerance, so
// vertices lying on the boundary, and degenerate bounds, still intersect.
func toRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min.X() - pointTolerance, b.Min.Y() - pointTolerance},
		[]float64{
			b.Max.X() - b.Min.X() + 2*pointTolerance,
			b.Max.Y() - b.Min.Y() + 2*pointTolerance,
		},
	)
}
