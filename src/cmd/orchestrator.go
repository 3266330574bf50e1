package cmd

import (
	"context"
	"os"

	"github.com/lua-bridge/build-addon/src/internal/build"
	"github.com/lua-bridge/build-addon/src/internal/config"
	"github.com/lua-bridge/build-addon/src/internal/platform"
	"github.com/lua-bridge/build-addon/src/internal/ui"
	"github.com/mattn/go-isatty"
)

// orchestrator is the part of build.Orchestrator the commands use
type orchestrator interface {
	BuildAll(ctx context.Context) *build.Summary
	BuildCurrent(ctx context.Context) error
	BuildPlatform(ctx context.Context, p platform.Platform) error
}

// newOrchestrator is replaced in tests
var newOrchestrator = func() orchestrator {
	o := build.New(config.DefaultPaths())

	// Spinners and progress bars only make sense on a terminal, and would
	// interleave with debug lines in verbose mode
	if isInteractive() && !ui.IsVerbose() {
		o.Animate = true
		o.Progress = os.Stderr
	}
	return o
}

func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
