package build

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Error reports a failed build tool run together with what it printed.
type Error struct {
	Tool   string   // program that was run
	Args   []string // its arguments
	Output []string // combined stdout/stderr lines
	Err    error    // exec error, typically *exec.ExitError
}

// Error formats the failure with the captured output for context:
//
//	scons build failed: exit status 2
//
//	Build output:
//	scons: *** [lua_bridge.os] Error 1
func (e *Error) Error() string {
	var prefix string
	if e.Err != nil {
		prefix = fmt.Sprintf("%s build failed: %v", e.Tool, e.Err)
	} else {
		prefix = fmt.Sprintf("%s build failed", e.Tool)
	}

	if output := e.CombinedOutput(); output != "" {
		return fmt.Sprintf("%s\n\nBuild output:\n%s", prefix, output)
	}
	return prefix
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CombinedOutput returns the captured output as a single string
func (e *Error) CombinedOutput() string {
	return strings.Join(e.Output, "\n")
}

// ExitCode returns the tool's exit status, or -1 if it never ran to completion
func (e *Error) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// splitOutput breaks captured output into lines, dropping the final newline
func splitOutput(output []byte) []string {
	text := strings.TrimRight(string(output), "\r\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
