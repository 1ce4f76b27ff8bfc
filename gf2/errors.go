// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// All kernels MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package gf2

import "errors"

// Every message is prefixed with "gf2: ..." so engine failures are easy to
// grep in CLI output and logs. Wrap with fmt.Errorf("ctx: %w", ErrX) to add
// context; callers still match with errors.Is.

var (
	// ErrInvalidArgument is returned when a matrix fails a precondition:
	// empty, ragged, not square (or not augmented), non-boolean entries,
	// or a non-positive requested size.
	ErrInvalidArgument = errors.New("gf2: invalid argument")

	// ErrLengthMismatch indicates two rows of different lengths were combined.
	ErrLengthMismatch = errors.New("gf2: row length mismatch")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul
	// where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrIndexOutOfRange indicates a pivot index outside [0, Rows()).
	ErrIndexOutOfRange = errors.New("gf2: index out of range")

	// ErrSingular is returned when no pivot exists for a column: the column
	// is zero at and below the diagonal, so the matrix has no inverse over
	// GF(2) (or the system has no unique solution).
	ErrSingular = errors.New("gf2: singular matrix")
)
