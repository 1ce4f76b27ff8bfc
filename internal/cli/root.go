// SPDX-License-Identifier: MIT

// Package cli implements the cobra commands of the boolgauss binary.
//
// Each subcommand (invert, eliminate, solve, multiply) lives in its own
// file. This file defines the root command, configuration loading and the
// mapping from errors to process exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/boolgauss/internal/cliconfig"
	"github.com/katalvlaran/boolgauss/log"
)

// Version information, injected from main via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  log.Logger
}

// NewRootCommand creates the root command with all subcommands registered.
// The root command performs no action itself.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), logger: log.NewNoopLogger()}

	rootCmd := &cobra.Command{
		Use:   "boolgauss",
		Short: "Solve and invert boolean linear systems over GF(2)",
		Long: `boolgauss solves linear systems over GF(2), where addition is XOR and
multiplication is AND, and inverts boolean matrices under this algebra.

Matrices are read from and written to a semicolon-separated text format:
one row per line, lines starting with '#' are comments.`,
		Example: `  boolgauss invert matrix.csv inverse.csv
  boolgauss solve system.csv
  boolgauss multiply a.csv b.csv product.csv`,

		// Errors are printed by Execute with a consistent "error:" prefix.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, cliconfig.FlagConfig, "", "Config file (.toml, .yaml, .json); default ~/.boolgauss/config.toml if present")
	pf.StringVar(&a.cfg.LogLevel, cliconfig.FlagLogLevel, a.cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	pf.StringVar(&a.cfg.LogFormat, cliconfig.FlagLogFormat, a.cfg.LogFormat, "Log format: console or json")
	pf.BoolVarP(&a.cfg.Quiet, cliconfig.FlagQuiet, "q", a.cfg.Quiet, "Do not echo matrices to stdout")

	rootCmd.AddCommand(newInvertCommand(a))
	rootCmd.AddCommand(newEliminateCommand(a))
	rootCmd.AddCommand(newSolveCommand(a))
	rootCmd.AddCommand(newMultiplyCommand(a))

	return rootCmd
}

// configure layers config file, environment and flags, then builds the logger.
func (a *app) configure(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return NewCLIError(ExitConfigError, fmt.Sprintf("config file %s not found", cfgFile))
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return WrapCLIError(ExitConfigError, "load config", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return WrapCLIError(ExitConfigError, "apply config", err)
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return WrapCLIError(ExitConfigError, "environment", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return WrapCLIError(ExitConfigError, "invalid configuration", err)
	}

	logger, err := log.New(cmd.ErrOrStderr(), a.cfg.LogFormat, a.cfg.LogLevel)
	if err != nil {
		return WrapCLIError(ExitConfigError, "logger", err)
	}
	a.logger = logger
	a.logger.Debug("configuration",
		log.String("log_level", a.cfg.LogLevel),
		log.String("log_format", a.cfg.LogFormat),
		log.Bool("quiet", a.cfg.Quiet),
		log.Bool("verify", a.cfg.Verify),
		log.Duration("watch_debounce", a.cfg.WatchDebounce),
	)

	return nil
}

// Execute runs rootCmd until completion or SIGINT/SIGTERM and returns the
// process exit code. Errors are printed to the command's stderr.
func Execute(rootCmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}

	return int(ExitCodeFor(err))
}

// printError writes "error: <message>" to w.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
