// Package builder constructs core.Graph values for the path-finding demo:
// random Euclidean graphs on a canvas, and regular grids.
//
// Constructors:
//
//   - NewRandomGraph(vertexCount, edgeCount, height, width, opts...)
//     Places vertices at distinct random integer coordinates inside
//     [0,width)×[0,height) and draws edgeCount distinct random pairs.
//   - NewGridGraph(height, width, opts...)
//     Lays vertices on a regular lattice (5px margin, 20px spacing by default)
//     and links every vertex to its right and bottom neighbor.
//
// Options (BuilderOption):
//
//   - WithSeed(seed)      reproducible draws (tests, golden images).
//   - WithRand(r)         caller-owned *rand.Rand (panics on nil).
//   - WithGridMargin(px)  first row/column offset for NewGridGraph.
//   - WithGridSpacing(px) lattice step for NewGridGraph.
//
// Without WithSeed/WithRand, NewRandomGraph seeds a fresh source from the clock,
// so two calls produce different graphs.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrInvalidArgument  any rejected parameter.
//   - ErrTooManyEdges     edgeCount > vertexCount·(vertexCount-1)/2
//     (also matches ErrInvalidArgument).
//   - ErrCanvasTooSmall   the canvas cannot host the requested vertices
//     (also matches ErrInvalidArgument).
//
// Complexity:
//
//   - NewRandomGraph: O(n²) for the weight matrix plus expected O(m) draws when
//     edgeCount stays well below the maximum. Duplicate draws are retried one by
//     one, so asking for nearly n·(n-1)/2 edges degrades to coupon-collector
//     behavior. That is a documented limitation, not an error.
//   - NewGridGraph: O(n²) for the matrix, O(n) edges.
package builder
