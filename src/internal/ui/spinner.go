package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner with our color scheme
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14], // dots style
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(out),
	)
	return &Spinner{spinner: s}
}

// Start starts the spinner
func (s *Spinner) Start() {
	s.spinner.Start()
}

// Stop stops the spinner
func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// Success stops the spinner and shows a success message
func (s *Spinner) Success(message string) {
	s.spinner.Stop()
	_, _ = successColor.Fprintf(out, "%s %s\n", successSymbol, message)
}

// Error stops the spinner and shows an error message
func (s *Spinner) Error(message string) {
	s.spinner.Stop()
	_, _ = errorColor.Fprintf(out, "%s %s\n", errorSymbol, message)
}

// WithSpinner runs fn while a spinner shows message.
// When animate is false the message is printed once instead, which keeps
// logs and redirected output free of spinner frames.
func WithSpinner(message string, animate bool, fn func() error) error {
	if !animate {
		Info("%s", message)
		return fn()
	}

	s := NewSpinner(message)
	s.Start()

	err := fn()
	s.Stop()
	return err
}
