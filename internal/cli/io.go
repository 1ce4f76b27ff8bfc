// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/boolgauss/gf2"
	"github.com/katalvlaran/boolgauss/textmatrix"
)

// readMatrix loads path, mapping failures to ExitInputError.
func readMatrix(path string) (gf2.Matrix, error) {
	m, err := textmatrix.ReadFile(path)
	if err != nil {
		return nil, WrapCLIError(ExitInputError, "read input", err)
	}
	return m, nil
}

// writeMatrix stores m at path, mapping failures to ExitOutputError.
// An empty path means "no output file".
func writeMatrix(path string, m gf2.Matrix) error {
	if path == "" {
		return nil
	}
	if err := textmatrix.WriteFile(path, m); err != nil {
		return WrapCLIError(ExitOutputError, "write output", err)
	}
	return nil
}

// printMatrix echoes a titled matrix unless quiet mode is on.
func (a *app) printMatrix(w io.Writer, title string, m gf2.Matrix) {
	if a.cfg.Quiet {
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprint(w, m)
}

// optionalArg returns args[i] or "" when absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
