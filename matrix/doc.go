// Package matrix holds dense all-pairs routines over the weight matrix of a
// core.Graph.
//
// It provides:
//
//   - ShortestDistances: Floyd–Warshall closure of a graph, the brute-force
//     oracle that single-pair engines are verified against.
//   - FloydWarshall: the same closure, in place, for a caller-owned matrix.
//   - CheckSymmetric: the structural invariant of an undirected weight matrix
//     (square, zero diagonal, w[i][j] == w[j][i]).
//
// Matrices use the adjacency convention of core: 0 off the diagonal means
// "no edge". Distance matrices use +Inf for "no path".
//
// Dense routines cost O(n²) memory and O(n³) time; they are meant for the
// small demo graphs this module draws.
package matrix
