// SPDX-License-Identifier: MIT
package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolgauss/gf2"
)

// TestMulIdentityLaw: I·M == M·I == M for every 3x3 boolean M.
func TestMulIdentityLaw(t *testing.T) {
	t.Parallel()

	id := mustIdentity(t, 3)
	for code := 0; code < 1<<9; code++ {
		m := matrixFromBits(code, 3)

		left, err := gf2.Mul(id, m)
		require.NoError(t, err)
		require.Equal(t, m, left)

		right, err := gf2.Mul(m, id)
		require.NoError(t, err)
		require.Equal(t, m, right)
	}
}

// TestMulXorSemantics: 1+1 = 0 over GF(2), so [1 1]·[1 1]ᵀ = 0.
func TestMulXorSemantics(t *testing.T) {
	t.Parallel()

	got, err := gf2.Mul(gf2.Matrix{{1, 1}}, gf2.Matrix{{1}, {1}})
	require.NoError(t, err)
	require.Equal(t, gf2.Matrix{{0}}, got)

	got, err = gf2.Mul(gf2.Matrix{{1, 1}, {0, 1}}, gf2.Matrix{{1, 1}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, gf2.Matrix{{1, 0}, {0, 1}}, got)
}

// TestMulRectangular checks the result shape is Rows(a) × Cols(b).
func TestMulRectangular(t *testing.T) {
	t.Parallel()

	a := gf2.Matrix{{1, 0, 1}, {0, 1, 1}}  // 2x3
	b := gf2.Matrix{{1, 0}, {1, 1}, {0, 1}} // 3x2
	got, err := gf2.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, gf2.Matrix{{1, 1}, {1, 0}}, got)

	got, err = gf2.Mul(b, a) // 3x2 · 2x3 = 3x3
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 3, got.Cols())
	require.Equal(t, gf2.Matrix{{1, 0, 1}, {1, 1, 0}, {0, 1, 1}}, got)
}

// TestMulErrors covers dimension and operand validation.
func TestMulErrors(t *testing.T) {
	t.Parallel()

	_, err := gf2.Mul(gf2.Matrix{{1, 0}}, gf2.Matrix{{1, 0}})
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)

	_, err = gf2.Mul(nil, gf2.Matrix{{1}})
	require.ErrorIs(t, err, gf2.ErrInvalidArgument)

	_, err = gf2.Mul(gf2.Matrix{{5}}, gf2.Matrix{{1}})
	require.ErrorIs(t, err, gf2.ErrInvalidArgument)
}

// TestMulVec covers the matrix-vector kernel and its errors.
func TestMulVec(t *testing.T) {
	t.Parallel()

	m := gf2.Matrix{{1, 1, 0}, {0, 1, 1}}
	y, err := gf2.MulVec(m, gf2.Row{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, gf2.Row{0, 0}, y)

	_, err = gf2.MulVec(m, gf2.Row{1, 1})
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)

	_, err = gf2.MulVec(m, gf2.Row{1, 2, 0})
	require.ErrorIs(t, err, gf2.ErrInvalidArgument)
}
