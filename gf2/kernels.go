// SPDX-License-Identifier: MIT
// Package gf2: shared kernel plumbing.
//
// Purpose:
//   - Operation tags for uniform error wrapping.
//   - The forward and backward elimination passes shared by
//     GaussianElimination, Solve and Inverse.
//
// Notes:
//   - Passes run strictly column by column: elimination at pivot j reads the
//     state left by pivot j-1, so they are never reordered or parallelised.
//   - A non-nil mirror receives every row operation applied to work (swaps
//     included). Inverse uses this to turn an identity matrix into A^{-1}.

package gf2

import (
	"fmt"

	"github.com/katalvlaran/boolgauss/log"
)

// Operation name constants for unified error wrapping.
const (
	opRowXor              = "RowXor"
	opGaussianElimination = "GaussianElimination"
	opSolve               = "Solve"
	opInverse             = "Inverse"
	opMul                 = "Mul"
	opMulVec              = "MulVec"
)

// gf2Errorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// forwardEliminate reduces the first Rows() columns of work to upper
// triangular form with a unit diagonal.
//
// For each pivot column j: bring a 1 to (j, j) via searchForOnes, then XOR
// row j into every row i > j that has a 1 in column j.
//
// Errors: ErrSingular (from searchForOnes).
// Complexity: O(n^2 * c).
func forwardEliminate(work, mirror Matrix, logger log.Logger, op string) error {
	size := work.Rows()
	var (
		k   int
		err error
	)
	for j := 0; j < size; j++ {
		if k, err = searchForOnes(work, j); err != nil {
			return err
		}
		if k != j {
			if mirror != nil {
				mirror[j], mirror[k] = mirror[k], mirror[j]
			}
			logger.Debug("pivot swap", log.String("op", op), log.Int("column", j), log.Int("row", k),
				log.Ints("pivot_row", work[j]))
		}
		for i := j + 1; i < size; i++ {
			if work[i][j] != 1 {
				continue
			}
			if work[i], err = RowXor(work[i], work[j]); err != nil {
				return err
			}
			if mirror != nil {
				if mirror[i], err = RowXor(mirror[i], mirror[j]); err != nil {
					return err
				}
			}
			logger.Debug("eliminate", log.String("op", op), log.Int("pivot", j), log.Int("row", i))
		}
	}

	return nil
}

// backwardEliminate clears everything above the unit diagonal left by
// forwardEliminate, walking pivots from the last row upwards.
//
// Indices are reversed: rj = size-j-1 is the pivot row, ri = size-i-1 the
// row being cleared, so every ri < rj.
//
// Complexity: O(n^2 * c).
func backwardEliminate(work, mirror Matrix, logger log.Logger, op string) error {
	size := work.Rows()
	var err error
	for j := 0; j < size; j++ {
		rj := size - j - 1
		for i := j + 1; i < size; i++ {
			ri := size - i - 1
			if work[ri][rj] != 1 {
				continue
			}
			if work[ri], err = RowXor(work[ri], work[rj]); err != nil {
				return err
			}
			if mirror != nil {
				if mirror[ri], err = RowXor(mirror[ri], mirror[rj]); err != nil {
					return err
				}
			}
			logger.Debug("back-eliminate", log.String("op", op), log.Int("pivot", rj), log.Int("row", ri))
		}
	}

	return nil
}
