// SPDX-License-Identifier: MIT

package gf2

// GaussianElimination reduces the augmented system m = [A | b] to
// row-echelon form over GF(2) and returns the result as a new matrix.
//
// Implementation:
//   - Stage 1: Validate m (non-empty, rectangular, boolean, Rows == Cols-1).
//   - Stage 2: Copy m; for each pivot column j, bring a 1 to (j, j) by row
//     swap, then XOR row j into every lower row with a 1 in column j.
//
// Behavior highlights:
//   - Forward pass only: A becomes upper triangular with a unit diagonal;
//     no back-substitution is done (see Solve for that).
//   - m is never modified.
//
// Errors:
//   - ErrInvalidArgument (precondition), ErrSingular (A has no pivot for some column).
//
// Complexity: O(n^2 * (n+1)).
func GaussianElimination(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateOperand(m); err != nil {
		return nil, gf2Errorf(opGaussianElimination, err)
	}
	if err := ValidateAugmented(m); err != nil {
		return nil, gf2Errorf(opGaussianElimination, err)
	}

	work := Copy(m)
	if err := forwardEliminate(work, nil, o.logger, opGaussianElimination); err != nil {
		return nil, gf2Errorf(opGaussianElimination, err)
	}

	return work, nil
}

// Solve returns the unique x with A·x = b for the augmented system m = [A | b].
//
// Implementation:
//   - Stage 1: GaussianElimination (same validation and errors).
//   - Stage 2: Back-substitution from the last row up:
//     x[i] = b'[i] XOR (XOR over k>i of U[i][k] AND x[k]).
//
// Errors: ErrInvalidArgument, ErrSingular (no unique solution).
// Complexity: O(n^3) dominated by elimination.
func Solve(m Matrix, opts ...Option) (Row, error) {
	u, err := GaussianElimination(m, opts...)
	if err != nil {
		return nil, gf2Errorf(opSolve, err)
	}

	n := u.Rows()
	x := make(Row, n)
	for i := n - 1; i >= 0; i-- {
		v := u[i][n] // right-hand side after elimination
		for k := i + 1; k < n; k++ {
			v ^= u[i][k] & x[k]
		}
		x[i] = v
	}

	return x, nil
}
