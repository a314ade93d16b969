package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Heuristic estimates the remaining cost from a to the destination b.
type Heuristic func(a, b orb.Point) float64

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Chebyshev is the larger of the axis offsets.
func Chebyshev(a, b orb.Point) float64 {
	return math.Max(math.Abs(a.X()-b.X()), math.Abs(a.Y()-b.Y()))
}

// Manhattan is the sum of the axis offsets. Not admissible for Euclidean weights.
func Manhattan(a, b orb.Point) float64 {
	return math.Abs(a.X()-b.X()) + math.Abs(a.Y()-b.Y())
}

// Zero always returns 0.
func Zero(_, _ orb.Point) float64 {
	return 0
}

// ParseHeuristic maps a name to a Heuristic: "euclidean" (or ""), "chebyshev",
// "manhattan", "zero" (or "none"). Case-insensitive.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	case "manhattan":
		return Manhattan, nil
	case "zero", "none":
		return Zero, nil
	default:
		return nil, fmt.Errorf("astar: unknown heuristic %q: %w", name, ErrBadHeuristic)
	}
}
