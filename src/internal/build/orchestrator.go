package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/lua-bridge/build-addon/src/internal/artifact"
	"github.com/lua-bridge/build-addon/src/internal/config"
	"github.com/lua-bridge/build-addon/src/internal/constants"
	"github.com/lua-bridge/build-addon/src/internal/platform"
	"github.com/lua-bridge/build-addon/src/internal/ui"
)

// Orchestrator builds the addon with SCons and copies the results into place
type Orchestrator struct {
	// Runner starts SCons
	Runner Runner

	// Paths locates the working directory and the addon tree
	Paths *config.Paths

	// Host resolves the platform of the running machine
	Host func() platform.Platform

	// Animate shows a spinner while SCons runs instead of a single line
	Animate bool

	// Progress receives a copy progress bar; nil disables it
	Progress io.Writer
}

// New returns an Orchestrator running the real SCons in paths.Root
func New(paths *config.Paths) *Orchestrator {
	return &Orchestrator{
		Runner: ExecRunner{},
		Paths:  paths,
		Host:   platform.Current,
	}
}

// Args returns the SCons arguments for building p in configuration cfg
func Args(p platform.Platform, cfg artifact.Configuration) []string {
	args := []string{"platform=" + p.String()}
	if cfg == artifact.Release {
		args = append(args, constants.BuildToolTarget)
	}
	return args
}

// Build runs SCons for one platform and configuration.
// Captured output is printed only when the build fails.
func (o *Orchestrator) Build(ctx context.Context, p platform.Platform, cfg artifact.Configuration) error {
	if !p.IsKnown() {
		ui.Error("Unknown platform: %s", p)
		return artifact.ErrUnknownPlatform
	}

	args := Args(p, cfg)
	message := fmt.Sprintf("Building for %s (%s)...", p, cfg)

	err := ui.WithSpinner(message, o.Animate, func() error {
		if err := CheckRequiredTools(o.Runner.LookPath, RequiredTools()); err != nil {
			return &Error{Tool: constants.BuildTool, Args: args, Err: err}
		}

		ui.Debug("Running: %s %s", constants.BuildTool, strings.Join(args, " "))
		ui.Debug("Working directory: %s", o.Paths.Root)

		output, err := o.Runner.CombinedOutput(ctx, o.Paths.Root, constants.BuildTool, args...)
		if err != nil {
			return &Error{Tool: constants.BuildTool, Args: args, Output: splitOutput(output), Err: err}
		}

		for _, line := range splitOutput(output) {
			ui.Debug("%s", line)
		}
		return nil
	})

	if err != nil {
		var buildErr *Error
		if errors.As(err, &buildErr) {
			ui.Error("Build failed: %v", buildErr.Err)
			ui.Debug("%s exited with status %d", buildErr.Tool, buildErr.ExitCode())
			if output := buildErr.CombinedOutput(); output != "" {
				ui.Println("Error output: %s", output)
			}
		} else {
			ui.Error("Build failed: %v", err)
		}
		return err
	}

	ui.Success("Build completed successfully!")
	return nil
}

// Copy installs the library built for p into the addon directory under the
// name the host application expects for cfg, and returns the destination path.
//
// Nothing is created when p is unknown or the library is missing.
func (o *Orchestrator) Copy(p platform.Platform, cfg artifact.Configuration) (string, error) {
	source, ok := artifact.SourceFilename(p)
	if !ok {
		ui.Error("Unknown platform: %s", p)
		return "", artifact.ErrUnknownPlatform
	}
	target, _ := artifact.TargetPath(p, cfg)

	destPath := o.Paths.Resolve(target)
	if _, err := artifact.CopyFile(o.Paths.Resolve(source), destPath, o.Progress); err != nil {
		var notFound *artifact.NotFoundError
		if errors.As(err, &notFound) {
			ui.Error("Built library not found: %s", source)
		} else {
			ui.Error("Failed to copy %s: %v", source, err)
		}
		return "", err
	}

	ui.Info("Copied %s to %s", source, ui.HighlightPath(target))
	return destPath, nil
}

// BuildPlatform builds and installs the debug configuration of p
func (o *Orchestrator) BuildPlatform(ctx context.Context, p platform.Platform) error {
	return o.buildPair(ctx, p, artifact.Debug).Err
}

// BuildCurrent builds and installs the debug configuration of the host
// platform. On an unsupported host nothing is built or copied.
func (o *Orchestrator) BuildCurrent(ctx context.Context) error {
	current := o.Host()
	if !current.IsKnown() {
		ui.Error("Unknown platform, cannot build")
		return artifact.ErrUnknownPlatform
	}

	ui.Info("Building for current platform: %s", ui.Highlight(current.String()))
	return o.buildPair(ctx, current, artifact.Debug).Err
}

// BuildAll builds and installs every configuration of every known platform,
// continuing past failures, and prints a summary of the run.
func (o *Orchestrator) BuildAll(ctx context.Context) *Summary {
	ui.Progress("Current platform: %s", ui.Highlight(o.Host().String()))
	ui.Header("Building for all platforms...")

	summary := NewSummary()
	for _, p := range platform.Known() {
		ui.Section("Building for %s", p)
		for _, cfg := range artifact.Configurations() {
			summary.Add(o.buildPair(ctx, p, cfg))
		}
	}

	ui.Println("")
	ui.Println("Build summary: %d/%d builds completed successfully", summary.Succeeded(), summary.Total)
	ui.Println("%s", summary.Render())
	if !summary.OK() {
		ui.Warning("No builds completed; check that %s is installed and the sources build", constants.BuildTool)
	} else if failed := summary.Failed(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, r := range failed {
			names = append(names, fmt.Sprintf("%s %s (%s)", r.Platform, r.Configuration, r.Stage))
		}
		ui.Warning("%d of %d builds did not complete: %s", len(failed), summary.Attempted(), strings.Join(names, ", "))
	}
	return summary
}

// buildPair builds one pair and copies it only if the build succeeded
func (o *Orchestrator) buildPair(ctx context.Context, p platform.Platform, cfg artifact.Configuration) PairResult {
	result := PairResult{Platform: p, Configuration: cfg}

	if err := o.Build(ctx, p, cfg); err != nil {
		result.Stage, result.Err = StageBuild, err
		ui.Error("%s %s build failed", p, cfg)
		return result
	}

	dest, err := o.Copy(p, cfg)
	if err != nil {
		result.Stage, result.Err = StageCopy, err
		ui.Error("Failed to copy %s %s build", p, cfg)
		return result
	}

	result.Stage, result.Path = StageDone, dest
	ui.Success("%s %s build completed", p, cfg)
	return result
}

// targetName is the file name a pair is installed under, for display
func targetName(p platform.Platform, cfg artifact.Configuration) string {
	target, ok := artifact.TargetPath(p, cfg)
	if !ok {
		return ""
	}
	return path.Base(target)
}
