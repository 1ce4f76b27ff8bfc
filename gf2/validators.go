// SPDX-License-Identifier: MIT
// Package: gf2
//
// Purpose:
//  - Single source of truth for the precondition checks shared by all kernels.
//  - Return sentinel errors wrapped with a validator tag and the offending
//    dimension/index, so call sites only add their operation name.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - Composite checks run in a fixed order: NotEmpty → Rectangular → Boolean
//    → shape (Square / Augmented / MulCompatible).

package gf2

import "fmt"

// validatorErrorf wraps err with the validator tag and a formatted detail.
func validatorErrorf(tag string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}

// ValidateNotEmpty ensures m has at least one row and one column.
// Errors: ErrInvalidArgument.
// Complexity: O(1).
func ValidateNotEmpty(m Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrInvalidArgument, "shape %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateRectangular ensures every row has the same length as row 0.
// Assumes m is non-empty (call ValidateNotEmpty first).
// Errors: ErrInvalidArgument naming the first ragged row.
// Complexity: O(r).
func ValidateRectangular(m Matrix) error {
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return validatorErrorf("ValidateRectangular", ErrInvalidArgument,
				"row %d has %d columns, want %d", i, len(row), cols)
		}
	}

	return nil
}

// ValidateBoolean ensures every element is 0 or 1.
// Errors: ErrInvalidArgument naming the first offending cell and its value.
// Complexity: O(r*c).
func ValidateBoolean(m Matrix) error {
	for i, row := range m {
		for j, v := range row {
			if v != 0 && v != 1 {
				return validatorErrorf("ValidateBoolean", ErrInvalidArgument,
					"element (%d,%d) = %d is not in {0,1}", i, j, v)
			}
		}
	}

	return nil
}

// ValidateSquare ensures Rows() == Cols().
// Errors: ErrInvalidArgument.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrInvalidArgument, "shape %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateAugmented ensures m has the [A | b] shape: Rows() == Cols()-1.
// Errors: ErrInvalidArgument.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if m.Rows() != m.Cols()-1 {
		return validatorErrorf("ValidateAugmented", ErrInvalidArgument,
			"shape %dx%d, want n x (n+1)", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateMulCompatible ensures both operands are well-formed boolean
// matrices and a.Cols() == b.Rows().
// Errors: ErrInvalidArgument (malformed operand), ErrDimensionMismatch.
// Complexity: O(r*c) for the boolean scans.
func ValidateMulCompatible(a, b Matrix) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch,
			"%dx%d times %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// validateOperand is the shared NotEmpty → Rectangular → Boolean sequence.
func validateOperand(m Matrix) error {
	if err := ValidateNotEmpty(m); err != nil {
		return err
	}
	if err := ValidateRectangular(m); err != nil {
		return err
	}

	return ValidateBoolean(m)
}
