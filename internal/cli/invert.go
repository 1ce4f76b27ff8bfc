// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgauss/gf2"
	"github.com/katalvlaran/boolgauss/internal/cliconfig"
	"github.com/katalvlaran/boolgauss/internal/watch"
	"github.com/katalvlaran/boolgauss/log"
)

// invertFlags holds the flag values local to the invert command.
type invertFlags struct {
	watch bool
}

// newInvertCommand creates the "invert" command.
func newInvertCommand(a *app) *cobra.Command {
	flags := &invertFlags{}

	cmd := &cobra.Command{
		Use:   "invert <input-file> <output-file>",
		Short: "Invert a square boolean matrix over GF(2)",
		Long: `Read a square boolean matrix, print it and its inverse over GF(2),
and write the inverse to the output file.

Fails with exit status 6 when the matrix is singular.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInvert(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], flags)
		},
	}

	cmd.Flags().BoolVar(&a.cfg.Verify, cliconfig.FlagVerify, a.cfg.Verify, "Check that M·M⁻¹ is the identity before writing")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Re-run whenever the input file changes, until interrupted")
	cmd.Flags().DurationVar(&a.cfg.WatchDebounce, cliconfig.FlagWatchDebounce, a.cfg.WatchDebounce, "Quiet period before re-running in watch mode")

	return cmd
}

func (a *app) runInvert(ctx context.Context, out io.Writer, input, output string, flags *invertFlags) error {
	once := func() error { return a.invertOnce(out, input, output) }
	if !flags.watch {
		return once()
	}

	return watch.New(input, a.cfg.WatchDebounce, a.logger).Run(ctx, once)
}

func (a *app) invertOnce(out io.Writer, input, output string) error {
	m, err := readMatrix(input)
	if err != nil {
		return err
	}
	a.printMatrix(out, "initial matrix :", m)

	inv, err := gf2.Inverse(m, gf2.WithLogger(a.logger))
	if err != nil {
		return engineError("invert "+input, err)
	}

	if a.cfg.Verify {
		if err := verifyInverse(m, inv); err != nil {
			return err
		}
		a.logger.Info("inverse verified", log.Int("size", m.Rows()))
	}

	a.printMatrix(out, "inverse matrix :", inv)
	if err := writeMatrix(output, inv); err != nil {
		return err
	}
	a.logger.Info("inverse written", log.String("input", input), log.String("output", output), log.Int("size", m.Rows()))

	return nil
}

// verifyInverse checks m·inv == I.
func verifyInverse(m, inv gf2.Matrix) error {
	prod, err := gf2.Mul(m, inv)
	if err != nil {
		return engineError("verify", err)
	}
	id, err := gf2.Identity(m.Rows())
	if err != nil {
		return engineError("verify", err)
	}
	if !gf2.Equal(prod, id) {
		return NewCLIError(ExitGeneralError, "verify: M·M⁻¹ is not the identity")
	}
	return nil
}
