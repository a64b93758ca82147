// Package ui provides colored status output for projgen. Colors are dropped
// automatically when NO_COLOR is set or the writer is not a terminal.
package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

// Success prints a green message to w.
func Success(w io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(w, format, args...)
}

// Warning prints a yellow message to w.
func Warning(w io.Writer, format string, args ...interface{}) {
	warningColor.Fprintf(w, format, args...)
}

// Error prints a red message to w.
func Error(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, format, args...)
}

// Info prints a cyan message to w.
func Info(w io.Writer, format string, args ...interface{}) {
	infoColor.Fprintf(w, format, args...)
}
