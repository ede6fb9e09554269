package termio

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// DebugEnv enables debug logging in loggers built by NewLogger when set to a non-empty value
const DebugEnv = "MINPARSE_DEBUG"

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	hintLabel  = color.New(color.FgYellow)
)

// PrintError writes "Error: <err>" followed by one indented line per hint.
// Colors follow fatih/color's detection (NO_COLOR, non-terminal output).
func PrintError(w io.Writer, err error, hints ...string) {
	if err == nil {
		return
	}
	errorLabel.Fprint(w, "Error:")
	fmt.Fprintln(w, " "+err.Error())
	for _, hint := range hints {
		if hint == "" {
			continue
		}
		hintLabel.Fprintln(w, "  "+hint)
	}
}

// NewLogger returns a logger writing to w with the given prefix. The level is
// Debug when $MINPARSE_DEBUG is set, Warn otherwise.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
	})
	if os.Getenv(DebugEnv) != "" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
