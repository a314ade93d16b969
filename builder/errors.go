// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (method name, offending values) is attached at the return site
//     with %w, never baked into the sentinel text.
//   • Constructors never panic at runtime; option constructors (WithX) do,
//     on meaningless values.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every rejected constructor parameter.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrTooManyEdges indicates edgeCount exceeds n·(n-1)/2. Errors carrying it
// also match ErrInvalidArgument.
var ErrTooManyEdges = errors.New("builder: edge count exceeds simple-graph maximum")

// ErrCanvasTooSmall indicates the canvas cannot hold the requested vertices
// (fewer distinct integer positions than vertices, or no grid cell fits).
// Errors carrying it also match ErrInvalidArgument.
var ErrCanvasTooSmall = errors.New("builder: canvas too small")

// invalidf returns "<method>: <msg>: builder: invalid argument".
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// invalidAsf is invalidf with an additional, more specific sentinel attached.
func invalidAsf(method string, kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), kind, ErrInvalidArgument)
}
