// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetric signals w[i][j] != w[j][i] for some pair.
	ErrAsymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a non-zero w[i][i].
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaN signals a NaN entry, which no weight or distance may hold.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// matrixErrorf attaches the operation name to a sentinel.
func matrixErrorf(op string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{op}, args...)...)
}
