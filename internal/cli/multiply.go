// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgauss/gf2"
)

// newMultiplyCommand creates the "multiply" command.
func newMultiplyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <a-file> <b-file> [output-file]",
		Short: "Multiply two boolean matrices over GF(2)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ma, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			mb, err := readMatrix(args[1])
			if err != nil {
				return err
			}
			prod, err := gf2.Mul(ma, mb)
			if err != nil {
				return engineError("multiply", err)
			}
			a.printMatrix(cmd.OutOrStdout(), "product :", prod)

			return writeMatrix(optionalArg(args, 2), prod)
		},
	}
}
