// Package ui provides colored console output utilities for the build-addon CLI
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// Color functions for different message types
	successColor  = color.New(color.FgGreen, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	infoColor     = color.New(color.FgCyan)
	progressColor = color.New(color.FgBlue)
	debugColor    = color.New(color.FgHiBlack)

	// Symbols
	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
	debugSymbol   = "·"

	// out receives all messages; color.Output handles Windows consoles
	out io.Writer = color.Output
)

// SetOutput redirects all messages to w and returns a function restoring
// the previous writer. Tests use it to capture what the CLI prints.
func SetOutput(w io.Writer) (restore func()) {
	prev := out
	out = w
	return func() { out = prev }
}

// SetColor forces colored output on or off, overriding terminal detection
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Output returns the writer messages are printed to
func Output() io.Writer {
	return out
}

// Success prints a success message in green with a checkmark
func Success(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = successColor.Fprintf(out, "%s %s\n", successSymbol, message)
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = errorColor.Fprintf(out, "%s %s\n", errorSymbol, message)
}

// Warning prints a warning message in yellow with a warning symbol
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = warningColor.Fprintf(out, "%s %s\n", warningSymbol, message)
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = infoColor.Fprintf(out, "%s %s\n", infoSymbol, message)
}

// Progress prints a progress message in blue with an arrow
func Progress(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = progressColor.Fprintf(out, "  %s %s\n", infoSymbol, message)
}

// Section prints a blank line followed by a "--- title ---" separator
func Section(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(out)
	_, _ = color.New(color.Bold).Fprintf(out, "--- %s ---\n", message)
}

// Println prints a regular message without color
func Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// Header prints a bold header message
func Header(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(out, message)
}

// Highlight prints text in a highlighted color (for emphasis)
func Highlight(text string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// HighlightPath prints a file path in a highlighted color
func HighlightPath(path string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(path)
}
