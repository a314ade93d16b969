// Package core provides the immutable Euclidean graph shared by the
// path-finding engines, together with the Path, Table and Listener types
// those engines exchange with their callers.
//
// The Graph G = (V,E) is:
//
//   - Simple and undirected: no self-loops, no parallel edges.
//   - Embedded in the plane: every vertex carries an orb.Point, assigned once.
//   - Euclidean-weighted: weight(u,v) is the straight-line distance between the
//     endpoints, so weights are non-negative and satisfy the triangle inequality.
//   - Stored as a dense, symmetric n×n matrix in row-major order, where 0 means
//     "no edge" and the diagonal is always 0.
//   - Immutable: there is no mutation API. Accessors return copies, so a Graph can
//     be shared by any number of concurrent readers without locks.
//
// Construction:
//
//	g, err := core.New(points, [2]int{0, 1}, [2]int{1, 2})
//
// Random and grid topologies live in package builder.
//
// Paths and notifications:
//
//	Path      – ordered vertex indices, first element is the source.
//	Table     – one Path per vertex, as returned by dijkstra.Dijkstra and astar.AStar.
//	Listener  – synchronous sink that receives every improved Path.
//
// Errors:
//
//	ErrNilGraph          - a nil *Graph was passed where a graph is required.
//	ErrVertexOutOfRange  - a vertex index is outside [0, VertexCount()).
//	ErrSelfLoop          - an edge joins a vertex to itself.
//	ErrDuplicateEdge     - the same unordered pair was listed twice.
//	ErrNoVertices        - New was called without any points.
package core
