package minparse

import "errors"

// ExitCodeDefaults holds the codes ExitCode resolves to.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

// DefaultExitCodes follows the usual shell conventions: 2 for command-line misuse.
var DefaultExitCodes = ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}

// ExitCode maps an error returned by Parse, Render or LoadConfig to a process
// exit code. The parser itself never exits; callers decide what to do.
// Precedence:
//  1. nil -> Success
//  2. *UserError -> MisusageError
//  3. anything else (including *ConfigError) -> GeneralError
func ExitCode(err error) int {
	return DefaultExitCodes.Resolve(err)
}

// Resolve converts an error to an exit code using d.
func (d ExitCodeDefaults) Resolve(err error) int {
	if err == nil {
		return d.Success
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return d.MisusageError
	}
	return d.GeneralError
}
