// SPDX-License-Identifier: MIT

// Package gf2: domain types.
// This file contains ONLY the Row and Matrix types and their O(1)/O(rc)
// accessors. Construction lives in api.go, validation in validators.go.
package gf2

import (
	"strconv"
	"strings"
)

// Row is a vector over GF(2).
// Elements are ints so that parsed input holding values outside {0,1} can be
// represented and then rejected by IsBoolean / ValidateBoolean.
type Row []int

// Matrix is a dense, row-major boolean matrix: Matrix[i] is row i.
// Well-formed matrices are rectangular (every row has Cols() elements);
// the kernels enforce this through ValidateRectangular.
//
// Rows are slices, so a row swap is an O(1) header swap. Kernels rely on
// that in the pivot search.
type Matrix []Row

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy of m; the result shares no storage with m.
// A nil receiver clones to nil.
// Complexity: O(r*c) time and memory.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}

	return out
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)

	return out
}

// String implements fmt.Stringer: one bracketed, comma-separated row per line.
// Complexity: O(r*c).
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders the row as "[a, b, c]".
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for j, v := range r {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
