// SPDX-License-Identifier: MIT
// Package gf2 — constructors and whole-matrix utilities.
//
// Purpose:
//   - Provide explicit constructors (NewZeros, Identity) with shape validation.
//   - Provide the copy/compare/predicate helpers every kernel builds on.
//
// Determinism:
//   - Fixed i→j loop orders; no hidden work beyond the documented allocation.

package gf2

import "fmt"

// NewZeros returns a new rows×cols zero matrix.
// Returns ErrInvalidArgument when rows <= 0 or cols <= 0.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewZeros(%d,%d): %w", rows, cols, ErrInvalidArgument)
	}
	// one backing array, sliced per row
	backing := make([]int, rows*cols)
	m := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return m, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Returns ErrInvalidArgument when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Inverse starts from Identity and mirrors every row operation onto it.
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidArgument)
	}
	id, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id[i][i] = 1
	}

	return id, nil
}

// Copy returns a deep, independent copy of m (new row containers, same values).
// Kernels call Copy before any destructive row operation, which is what keeps
// caller-supplied matrices untouched.
// Complexity: O(r*c).
func Copy(m Matrix) Matrix {
	return m.Clone()
}

// Equal reports whether a and b have the same shape and the same elements.
// Ragged matrices compare row by row.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// IsBoolean reports whether every element of every row is exactly 0 or 1.
// An empty matrix is vacuously boolean.
// Complexity: O(r*c); stops at the first offending element.
func IsBoolean(m Matrix) bool {
	for _, row := range m {
		if !row.isBoolean() {
			return false
		}
	}

	return true
}

func (r Row) isBoolean() bool {
	for _, v := range r {
		if v != 0 && v != 1 {
			return false
		}
	}

	return true
}
