// SPDX-License-Identifier: MIT

// Package textmatrix reads and writes boolean matrices in the
// semicolon-separated text layout used by the boolgauss CLI:
//
//	# 3x3 system matrix
//	0; 1; 1;
//	1; 1; 0;
//	1; 0; 0;
//
// Lines starting with '#' are comments and blank lines are skipped. Every
// other line is one row of integer tokens separated by ';', with an optional
// trailing separator. Values outside {0,1} are parsed as-is and left to the
// gf2 validators to reject, so the error a user sees names the offending cell.
package textmatrix
