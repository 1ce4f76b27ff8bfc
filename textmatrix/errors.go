// SPDX-License-Identifier: MIT

package textmatrix

import "errors"

var (
	// ErrSyntax is returned for a token that is not an integer, an empty
	// token between separators, or a malformed line.
	ErrSyntax = errors.New("textmatrix: syntax error")

	// ErrRaggedRows is returned when a row's length differs from the first row's.
	ErrRaggedRows = errors.New("textmatrix: rows have different lengths")

	// ErrEmpty is returned when the input holds no data rows.
	ErrEmpty = errors.New("textmatrix: no rows")
)
