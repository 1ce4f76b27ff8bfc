// SPDX-License-Identifier: MIT

package textmatrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolgauss/gf2"
)

// Layout constants shared by the reader and the writer.
const (
	Separator     = ';'
	CommentMarker = '#'
)

// Read parses a matrix from r.
//
// Errors (wrapped with the 1-based input line):
//   - ErrSyntax for non-integer or empty interior tokens and malformed quoting.
//   - ErrRaggedRows when a row length differs from the first row.
//   - ErrEmpty when r holds only comments and blank lines.
func Read(r io.Reader) (gf2.Matrix, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.Comment = CommentMarker
	cr.FieldsPerRecord = -1 // row lengths are checked below with a better message
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var m gf2.Matrix
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("line %d: %v: %w", pe.Line, pe.Err, ErrSyntax)
			}
			return nil, fmt.Errorf("read matrix: %w", err)
		}
		line, _ := cr.FieldPos(0)

		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue // whitespace-only line
		}
		if len(m) > 0 && len(row) != len(m[0]) {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", line, len(row), len(m[0]), ErrRaggedRows)
		}
		m = append(m, row)
	}

	if len(m) == 0 {
		return nil, ErrEmpty
	}

	return m, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (gf2.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseRecord converts one record into a row. A single trailing empty field
// (from the trailing separator) is dropped; a record with no values at all
// yields a nil row.
func parseRecord(record []string) (gf2.Row, error) {
	n := len(record)
	if n > 0 && strings.TrimSpace(record[n-1]) == "" {
		n--
	}
	if n == 0 {
		return nil, nil
	}

	row := make(gf2.Row, n)
	for k := 0; k < n; k++ {
		tok := strings.TrimSpace(record[k])
		if tok == "" {
			return nil, fmt.Errorf("empty value at position %d: %w", k+1, ErrSyntax)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("value %q at position %d: %w", tok, k+1, ErrSyntax)
		}
		row[k] = v
	}

	return row, nil
}
