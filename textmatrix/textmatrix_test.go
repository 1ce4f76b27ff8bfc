// SPDX-License-Identifier: MIT
package textmatrix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolgauss/gf2"
	"github.com/katalvlaran/boolgauss/textmatrix"
)

// TestReadLayout covers comments, blank lines, trailing separators and spacing.
func TestReadLayout(t *testing.T) {
	t.Parallel()

	in := "# system\n" +
		"0; 1; 1;\n" +
		"\n" +
		"1;1;0\n" +
		"   \n" +
		"# trailing comment\n" +
		"1 ; 0 ; 0 ; \n"

	m, err := textmatrix.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, gf2.Matrix{{0, 1, 1}, {1, 1, 0}, {1, 0, 0}}, m)
}

// TestReadKeepsNonBooleanValues: out-of-field integers are parsed, not rejected.
func TestReadKeepsNonBooleanValues(t *testing.T) {
	t.Parallel()

	m, err := textmatrix.Read(strings.NewReader("1; 2;\n-1; 0;\n"))
	require.NoError(t, err)
	require.Equal(t, gf2.Matrix{{1, 2}, {-1, 0}}, m)
	require.False(t, gf2.IsBoolean(m))
}

// TestReadErrors covers every reader failure mode.
func TestReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		want     error
		contains string
	}{
		{"not an integer", "1; x;\n", textmatrix.ErrSyntax, "line 1"},
		{"empty interior token", "1; 0;\n1;; 0;\n", textmatrix.ErrSyntax, "line 2"},
		{"bare quote", "1; \"0;\n", textmatrix.ErrSyntax, "line 1"},
		{"ragged", "1; 0;\n1;\n", textmatrix.ErrRaggedRows, "line 2"},
		{"only comments", "# nothing\n\n", textmatrix.ErrEmpty, ""},
		{"empty input", "", textmatrix.ErrEmpty, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := textmatrix.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.contains)
		})
	}
}

// TestFormat pins the writer layout.
func TestFormat(t *testing.T) {
	t.Parallel()

	got := textmatrix.Format(gf2.Matrix{{1, 0, 1}, {0, 1, 1}})
	require.Equal(t, "1; 0; 1;\n0; 1; 1;\n", got)
}

// TestRoundTrip: Read(Format(m)) == m for every 3x3 boolean matrix and a
// rectangular one.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	check := func(m gf2.Matrix) {
		back, err := textmatrix.Read(strings.NewReader(textmatrix.Format(m)))
		require.NoError(t, err)
		require.Equal(t, m, back)
	}

	for code := 0; code < 1<<9; code++ {
		m := make(gf2.Matrix, 3)
		for i := range m {
			m[i] = gf2.Row{(code >> (3 * i)) & 1, (code >> (3*i + 1)) & 1, (code >> (3*i + 2)) & 1}
		}
		check(m)
	}
	check(gf2.Matrix{{1, 0, 1, 1}, {0, 0, 0, 1}})
}

// TestFileRoundTrip exercises WriteFile / ReadFile on disk.
func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "m.csv")
	m := gf2.Matrix{{1, 1}, {0, 1}}
	require.NoError(t, textmatrix.WriteFile(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1; 1;\n0; 1;\n", string(raw))

	back, err := textmatrix.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, m, back)

	_, err = textmatrix.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
