// Package builder defines shared constants used by the graph constructors.
package builder

//-----------------------------------------------------------------------------
// Method names, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	// MethodRandomGraph is the canonical name for the NewRandomGraph constructor.
	MethodRandomGraph = "NewRandomGraph"
	// MethodGridGraph is the canonical name for the NewGridGraph constructor.
	MethodGridGraph = "NewGridGraph"
)

//-----------------------------------------------------------------------------
// Grid layout defaults (pixels).
//-----------------------------------------------------------------------------

// DefaultGridMargin is the offset of the first row and column from the canvas edge.
const DefaultGridMargin = 5

// DefaultGridSpacing is the distance between neighboring grid vertices, and
// therefore the weight of every grid edge.
const DefaultGridSpacing = 20

//-----------------------------------------------------------------------------
// Minimums.
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count NewRandomGraph accepts.
const MinVertices = 1

// MinCanvasSide is the smallest accepted canvas height or width.
const MinCanvasSide = 1
