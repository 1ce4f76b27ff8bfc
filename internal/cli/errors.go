// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boolgauss/gf2"
)

// ExitCode is the process exit status. Each engine failure kind gets its own
// code so scripts can tell a singular matrix from a malformed one.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers unrecognised commands, bad usage and anything
	// without a more specific code.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument: the matrix fails a precondition (shape, values).
	ExitInvalidArgument ExitCode = 2

	// ExitLengthMismatch: two rows of different lengths were combined.
	ExitLengthMismatch ExitCode = 3

	// ExitDimensionMismatch: operands of a product have incompatible shapes.
	ExitDimensionMismatch ExitCode = 4

	// ExitIndexError: a pivot index was out of bounds.
	ExitIndexError ExitCode = 5

	// ExitSingularMatrix: no pivot for some column; no inverse / unique solution.
	ExitSingularMatrix ExitCode = 6

	// ExitInputError: an input file could not be read or parsed.
	ExitInputError ExitCode = 7

	// ExitOutputError: the output file could not be written.
	ExitOutputError ExitCode = 8

	// ExitConfigError: configuration file, environment or flags are invalid.
	ExitConfigError ExitCode = 9
)

// CLIError is an error that carries an exit code.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError wrapping err.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// engineKinds maps gf2 sentinels to their exit codes and a short condition name.
var engineKinds = []struct {
	err  error
	code ExitCode
	name string
}{
	{gf2.ErrSingular, ExitSingularMatrix, "singular matrix"},
	{gf2.ErrDimensionMismatch, ExitDimensionMismatch, "dimension mismatch"},
	{gf2.ErrLengthMismatch, ExitLengthMismatch, "length mismatch"},
	{gf2.ErrIndexOutOfRange, ExitIndexError, "index error"},
	{gf2.ErrInvalidArgument, ExitInvalidArgument, "invalid argument"},
}

// engineError wraps a gf2 failure in a CLIError whose code and message name
// the condition.
func engineError(action string, err error) *CLIError {
	for _, k := range engineKinds {
		if errors.Is(err, k.err) {
			return WrapCLIError(k.code, fmt.Sprintf("%s: %s", action, k.name), err)
		}
	}
	return WrapCLIError(ExitGeneralError, action, err)
}

// ExitCodeFor returns the exit status for err: the CLIError code if err is
// (or wraps) one, the engine code if it wraps a gf2 sentinel, otherwise
// ExitGeneralError. A nil err maps to ExitSuccess.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return engineError("", err).Code
}
