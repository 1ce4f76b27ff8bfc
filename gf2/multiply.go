// SPDX-License-Identifier: MIT

package gf2

import "fmt"

// Mul computes C = A × B over GF(2): C[i][j] = XOR over k of (A[i][k] AND B[k][j]).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (well-formed boolean operands, A.Cols == B.Rows).
//   - Stage 2: i→k→j loops; rows of A with a zero at k are skipped, so each
//     non-zero A[i][k] XORs row k of B into row i of C.
//
// Behavior highlights:
//   - Result shape is A.Rows() × B.Cols(); rectangular operands are supported.
//   - Operands are never modified; C is freshly allocated.
//
// Errors:
//   - ErrInvalidArgument (empty/ragged/non-boolean operand), ErrDimensionMismatch.
//
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, gf2Errorf(opMul, err)
	}

	res, err := NewZeros(a.Rows(), b.Cols())
	if err != nil {
		return nil, gf2Errorf(opMul, err)
	}
	for i := range a {
		for k, av := range a[i] {
			if av == 0 {
				continue // AND with 0 contributes nothing
			}
			xorInto(res[i], b[k])
		}
	}

	return res, nil
}

// MulVec computes y = A·x over GF(2).
//
// Errors:
//   - ErrInvalidArgument (malformed A or non-boolean x).
//   - ErrDimensionMismatch when len(x) != A.Cols().
//
// Complexity: O(r*c).
func MulVec(m Matrix, x Row) (Row, error) {
	if err := validateOperand(m); err != nil {
		return nil, gf2Errorf(opMulVec, err)
	}
	if len(x) != m.Cols() {
		return nil, gf2Errorf(opMulVec, fmt.Errorf("vector len %d, want %d: %w", len(x), m.Cols(), ErrDimensionMismatch))
	}
	if !x.isBoolean() {
		return nil, gf2Errorf(opMulVec, fmt.Errorf("vector is not boolean: %w", ErrInvalidArgument))
	}

	y := make(Row, m.Rows())
	for i, row := range m {
		var acc int
		for k, v := range row {
			acc ^= v & x[k]
		}
		y[i] = acc
	}

	return y, nil
}
