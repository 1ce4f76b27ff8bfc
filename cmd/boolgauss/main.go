// SPDX-License-Identifier: MIT

// Command boolgauss solves and inverts boolean linear systems over GF(2).
//
// All functionality lives in internal/cli; main only injects build-time
// version information (set via -ldflags "-X main.version=...") and turns the
// command result into an exit status.
package main

import (
	"os"

	"github.com/katalvlaran/boolgauss/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	os.Exit(cli.Execute(cli.NewRootCommand()))
}
