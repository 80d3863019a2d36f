// Package logger centralizes anagramd's charmbracelet/log setup so every
// package gets the same prefixed, level-aware logger instead of each
// rolling its own.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default returns a logger writing to stdout with prefix, at the process's
// global log level, with no caller reporting and no timestamp — the quiet
// default for a one-shot CLI run.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Server returns a logger suited to the long-running IPC server: same as
// Default but with timestamps, since server log lines are read out of
// band from stderr rather than alongside a single command's output.
func Server(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig returns a logger with every option set explicitly, for
// callers driven by parsed flags or a TOML config section.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmter,
	})
}
