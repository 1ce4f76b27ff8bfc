// SPDX-License-Identifier: MIT

package gf2

import "github.com/katalvlaran/boolgauss/log"

// Test bridge (white-box) for unexported kernels.
// Compiled only with the package's tests; invisible in production builds.

var (
	// ExportedSearchForOnes exposes the in-place pivot search.
	ExportedSearchForOnes = searchForOnes
)

// PanicNilLogger_TestOnly exports the WithLogger panic message.
const PanicNilLogger_TestOnly = panicNilLogger

// GatheredLogger_TestOnly returns the logger gatherOptions resolves for opts.
func GatheredLogger_TestOnly(opts ...Option) log.Logger {
	return gatherOptions(opts...).logger
}
