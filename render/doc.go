// Package render draws a core.Graph and the paths found on it into a PNG
// canvas (github.com/fogleman/gg).
//
// The drawing follows the classic comparison window: black 1px edges, red
// vertex discs of radius 7 with the vertex index in white, and path overlays
// in a per-algorithm color. A Canvas doubles as a core.Listener factory so an
// engine can paint every improved path while it searches.
//
// Canvas methods serialize on an internal mutex; listeners for several
// engines may share one canvas across goroutines.
package render
