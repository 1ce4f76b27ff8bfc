// SPDX-License-Identifier: MIT

package gf2

import "fmt"

// RowXor returns the element-wise XOR of a and b in a fresh row.
// Neither input is modified.
// Errors: ErrLengthMismatch when len(a) != len(b).
// Complexity: O(n).
func RowXor(a, b Row) (Row, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%s: len %d vs %d: %w", opRowXor, len(a), len(b), ErrLengthMismatch)
	}
	out := make(Row, len(a))
	for k := range a {
		out[k] = a[k] ^ b[k]
	}

	return out, nil
}

// xorInto sets dst ^= src in place. Lengths are guaranteed equal by the
// kernels' rectangular validation.
func xorInto(dst, src Row) {
	for k := range dst {
		dst[k] ^= src[k]
	}
}

// searchForOnes ensures m[j][j] == 1 by swapping row j with the first row
// k in [j, Rows()) where m[k][j] == 1, and returns k (k == j means no swap).
//
// It mutates m in place and must only ever see an engine-owned copy.
//
// Errors:
//   - ErrIndexOutOfRange when j < 0 or j >= Rows().
//   - ErrSingular when column j is zero at and below the diagonal.
//
// Complexity: O(Rows()) scan, O(1) swap.
func searchForOnes(m Matrix, j int) (int, error) {
	if j < 0 || j >= m.Rows() {
		return 0, fmt.Errorf("pivot %d of %d rows: %w", j, m.Rows(), ErrIndexOutOfRange)
	}
	for k := j; k < m.Rows(); k++ {
		if m[k][j] == 1 {
			if k != j {
				m[j], m[k] = m[k], m[j]
			}

			return k, nil
		}
	}

	return 0, fmt.Errorf("null column %d: %w", j, ErrSingular)
}
