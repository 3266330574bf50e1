package build

import (
	"context"
	"os/exec"
)

// Runner starts external programs. ExecRunner is the real implementation;
// tests substitute a fake that records invocations.
type Runner interface {
	// LookPath resolves a program name against PATH
	LookPath(file string) (string, error)

	// CombinedOutput runs name with args in dir and returns stdout and
	// stderr interleaved. A non-zero exit status is reported as an error.
	CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// LookPath wraps exec.LookPath
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CombinedOutput runs the program to completion and captures its output
func (ExecRunner) CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
