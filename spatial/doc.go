// Package spatial maps plane coordinates back to graph vertices.
//
// An Index is an R-tree (github.com/dhconnelly/rtreego) over the vertex
// coordinates of a core.Graph. It answers the questions a canvas front end
// asks when a user clicks: which vertex is nearest, which vertex disc was hit,
// which vertices fall inside a selection rectangle.
//
// An Index is read-only after NewIndex returns and may be queried from any
// number of goroutines.
package spatial
