// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgauss/gf2"
)

// newEliminateCommand creates the "eliminate" command.
func newEliminateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminate <input-file> [output-file]",
		Short: "Reduce an augmented system [A | b] to row-echelon form",
		Long: `Read an n x (n+1) augmented boolean matrix [A | b], run forward
Gaussian elimination over GF(2) and print the row-echelon form.
The result is written to output-file when given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			u, err := gf2.GaussianElimination(m, gf2.WithLogger(a.logger))
			if err != nil {
				return engineError("eliminate "+args[0], err)
			}
			a.printMatrix(cmd.OutOrStdout(), "row-echelon form :", u)

			return writeMatrix(optionalArg(args, 1), u)
		},
	}
}
