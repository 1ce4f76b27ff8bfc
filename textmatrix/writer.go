// SPDX-License-Identifier: MIT

package textmatrix

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolgauss/gf2"
)

// valueSeparator joins values inside a row; every row also ends with Separator.
const valueSeparator = "; "

// Format renders m: each row's values joined by "; ", a trailing ';', one
// '\n'-terminated line per row.
func Format(m gf2.Matrix) string {
	var sb strings.Builder
	_ = Write(&sb, m) // strings.Builder never fails

	return sb.String()
}

// Write renders m to w in the layout described by Format.
func Write(w io.Writer, m gf2.Matrix) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for k, v := range row {
			if k > 0 {
				bw.WriteString(valueSeparator)
			}
			bw.WriteString(strconv.Itoa(v))
		}
		if len(row) > 0 {
			bw.WriteByte(Separator)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes m to path, creating or truncating it.
func WriteFile(path string, m gf2.Matrix) error {
	return os.WriteFile(path, []byte(Format(m)), 0o644)
}
