// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgauss/gf2"
	"github.com/katalvlaran/boolgauss/log"
)

// newSolveCommand creates the "solve" command.
func newSolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <input-file> [output-file]",
		Short: "Solve an augmented boolean system [A | b] over GF(2)",
		Long: `Read an n x (n+1) augmented boolean matrix [A | b] and print the
unique x with A·x = b. The solution is written to output-file as a
single row when given.

Fails with exit status 6 when A is singular.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			x, err := gf2.Solve(m, gf2.WithLogger(a.logger))
			if err != nil {
				return engineError("solve "+args[0], err)
			}
			a.logger.Info("system solved", log.Int("unknowns", len(x)))

			// The solution is the one result, so it is printed even in quiet mode.
			fmt.Fprintf(cmd.OutOrStdout(), "x = %v\n", x)

			return writeMatrix(optionalArg(args, 1), gf2.Matrix{x})
		},
	}
}
