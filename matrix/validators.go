// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go: structural checks for undirected weight matrices.

package matrix

import "math"

// CheckSymmetric verifies that w is square, has a zero diagonal and satisfies
// w[i][j] == w[j][i] exactly. Checks run row by row in index order, so the
// first violation found is reported.
//
// Errors: ErrNotSquare, ErrNaN, ErrNonZeroDiagonal, ErrAsymmetric.
func CheckSymmetric(w [][]float64) error {
	n := len(w)
	var i, j int
	for i = 0; i < n; i++ {
		if len(w[i]) != n {
			return matrixErrorf(opCheckSymmetric, "row %d has %d columns, want %d: %w", i, len(w[i]), n, ErrNotSquare)
		}
	}
	for i = 0; i < n; i++ {
		if math.IsNaN(w[i][i]) {
			return matrixErrorf(opCheckSymmetric, "w[%d][%d]: %w", i, i, ErrNaN)
		}
		if w[i][i] != 0 {
			return matrixErrorf(opCheckSymmetric, "w[%d][%d]=%v: %w", i, i, w[i][i], ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			if math.IsNaN(w[i][j]) || math.IsNaN(w[j][i]) {
				return matrixErrorf(opCheckSymmetric, "%s: %w", describe(i, j, w[i][j], w[j][i]), ErrNaN)
			}
			if w[i][j] != w[j][i] {
				return matrixErrorf(opCheckSymmetric, "%s: %w", describe(i, j, w[i][j], w[j][i]), ErrAsymmetric)
			}
		}
	}

	return nil
}
