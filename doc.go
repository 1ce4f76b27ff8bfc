// Package boolgauss solves and inverts boolean matrices over GF(2), the
// two-element field where addition is XOR and multiplication is AND.
//
// 🚀 What is boolgauss?
//
//	A small, dependency-light toolkit that brings together:
//		• gf2:        row XOR, Gaussian elimination, back-substitution,
//		              Gauss–Jordan inversion and matrix products over GF(2)
//		• textmatrix: the semicolon-separated text format ("1; 0; 1;")
//		• log:        the structured logging facade used by gf2 and the CLI
//		• cmd/boolgauss: the command-line tool (invert, eliminate, solve, multiply)
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every operation works on a private copy
//   - Every failure wraps one of the gf2 sentinel errors (errors.Is friendly)
//   - Singular matrices are reported, never silently "inverted"
//
// Quick start:
//
//	m := gf2.Matrix{{0, 1}, {1, 1}}
//	inv, err := gf2.Inverse(m)  // [[1, 1], [1, 0]]
//
// See the examples/ directory for runnable scenarios.
package boolgauss
