// SPDX-License-Identifier: MIT

// Package gf2 is a dense linear-algebra engine over GF(2), the two-element
// field where addition is XOR and multiplication is AND.
//
// What & Why:
//
//	Boolean linear systems of the form
//	  (a AND x) XOR (b AND y) XOR (c AND z) = A
//	  (d AND x) XOR (e AND y) XOR (f AND z) = B
//	  ...
//	show up in small cryptographic and combinatorial problems. gf2 solves them
//	by Gaussian elimination and inverts square boolean matrices by
//	Gauss–Jordan elimination mirrored onto an identity matrix.
//
// Surface:
//
//   - Constructors & utilities: NewZeros, Identity, Copy, Equal, IsBoolean.
//   - Row operations: RowXor.
//   - Kernels: GaussianElimination (row-echelon form of [A | b]), Solve,
//     Inverse, Mul, MulVec.
//   - Validators: ValidateNotEmpty, ValidateRectangular, ValidateBoolean,
//     ValidateSquare, ValidateAugmented, ValidateMulCompatible.
//
// Ownership:
//
//	Every kernel works on a private copy. A caller's matrix is never mutated,
//	so the same Matrix can be passed to several operations in a row.
//
// Errors:
//
//	Kernels return the sentinels from errors.go wrapped with the operation
//	name and, where useful, the offending index or dimension. Match them with
//	errors.Is.
//
// Complexity:
//
//	Inverse and Mul run in O(n^3); GaussianElimination and Solve in O(n^2·m).
//	No kernel allocates beyond its result and one working copy.
package gf2
