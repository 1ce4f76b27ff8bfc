// SPDX-License-Identifier: MIT
package gf2_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolgauss/gf2"
	"github.com/katalvlaran/boolgauss/log"
)

// mustIdentity builds I_n or fails the test.
func mustIdentity(tb testing.TB, n int) gf2.Matrix {
	tb.Helper()
	id, err := gf2.Identity(n)
	require.NoError(tb, err)

	return id
}

// matrixFromBits decodes the low n*n bits of code into an n×n matrix,
// row-major, bit 0 first. Used to enumerate every small boolean matrix.
func matrixFromBits(code, n int) gf2.Matrix {
	m := make(gf2.Matrix, n)
	for i := 0; i < n; i++ {
		m[i] = make(gf2.Row, n)
		for j := 0; j < n; j++ {
			m[i][j] = (code >> (i*n + j)) & 1
		}
	}

	return m
}

// randomInvertible returns L·U for random unit lower/upper triangular L, U,
// which is always invertible over GF(2). Deterministic for a given seed.
func randomInvertible(tb testing.TB, n int, seed int64) gf2.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	l := mustIdentity(tb, n)
	u := mustIdentity(tb, n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l[i][j] = rng.Intn(2)
		}
		for j := i + 1; j < n; j++ {
			u[i][j] = rng.Intn(2)
		}
	}
	m, err := gf2.Mul(l, u)
	require.NoError(tb, err)

	return m
}

// augment returns [a | b] as a new matrix.
func augment(a gf2.Matrix, b gf2.Row) gf2.Matrix {
	out := make(gf2.Matrix, len(a))
	for i := range a {
		out[i] = append(a[i].Clone(), b[i])
	}

	return out
}

// entry is one captured log call.
type entry struct {
	level  string
	msg    string
	fields []log.Field
}

// recordLogger is a log.Logger that keeps every entry for assertions.
type recordLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (r *recordLogger) add(level, msg string, fields []log.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{level: level, msg: msg, fields: fields})
}

func (r *recordLogger) Debug(msg string, fields ...log.Field) { r.add("debug", msg, fields) }
func (r *recordLogger) Info(msg string, fields ...log.Field)  { r.add("info", msg, fields) }
func (r *recordLogger) Warn(msg string, fields ...log.Field)  { r.add("warn", msg, fields) }
func (r *recordLogger) Error(msg string, fields ...log.Field) { r.add("error", msg, fields) }

// messages returns the captured messages in order.
func (r *recordLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.msg
	}

	return out
}
