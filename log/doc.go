// SPDX-License-Identifier: MIT

// Package log is the logging port used by the GF(2) engine and the CLI.
//
// The engine never writes to stdout or stderr on its own. Diagnostics such as
// pivot swaps and row eliminations are reported through a Logger that the
// caller injects (see gf2.WithLogger). Two implementations ship here:
//
//   - NoopLogger discards everything; it is the engine default.
//   - ZerologAdapter forwards to a github.com/rs/zerolog logger.
//
// Usage:
//
//	zl := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	inv, err := gf2.Inverse(m, gf2.WithLogger(log.NewZerologAdapterWithLogger(zl)))
//
// Any other logging library can be plugged in by implementing Logger.
package log
