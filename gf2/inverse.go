// SPDX-License-Identifier: MIT

package gf2

// Inverse returns A^{-1} over GF(2) for a square boolean matrix.
//
// Implementation (Gauss–Jordan mirrored onto an identity matrix):
//   - Stage 1: Validate m (non-empty, rectangular, square, boolean).
//   - Stage 2: work = Copy(m), inv = Identity(n).
//   - Stage 3: Forward pass. For each pivot j, searchForOnes brings a 1 to
//     (j, j); the same swap is applied to inv. Every lower row i with a 1 in
//     column j gets work[i] ^= work[j] and inv[i] ^= inv[j].
//   - Stage 4: Backward pass with reversed indices rj = n-j-1, ri = n-i-1:
//     if work[ri][rj] == 1, XOR row rj into row ri of both work and inv.
//   - Stage 5: work is now I; return inv.
//
// Behavior highlights:
//   - Every row operation on work is mirrored 1:1 onto inv, so
//     Mul(m, inv) == Mul(inv, m) == Identity(n).
//   - m is never modified.
//
// Errors:
//   - ErrInvalidArgument (precondition), ErrSingular (no inverse over GF(2)).
//
// Complexity: O(n^3) time, O(n^2) extra space.
//
// AI-Hints:
//   - Pass WithLogger to trace pivot swaps and eliminations at debug level.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateOperand(m); err != nil {
		return nil, gf2Errorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, gf2Errorf(opInverse, err)
	}

	size := m.Rows()
	work := Copy(m)
	inv, err := Identity(size)
	if err != nil {
		return nil, gf2Errorf(opInverse, err)
	}

	if err = forwardEliminate(work, inv, o.logger, opInverse); err != nil {
		return nil, gf2Errorf(opInverse, err)
	}
	if err = backwardEliminate(work, inv, o.logger, opInverse); err != nil {
		return nil, gf2Errorf(opInverse, err)
	}

	return inv, nil
}
