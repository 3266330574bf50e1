// Package cmd implements the CLI commands for build-addon
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lua-bridge/build-addon/src/internal/tui"
	"github.com/lua-bridge/build-addon/src/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	noColor bool
)

// errReported marks an error that has already been printed
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "build-addon [command]",
	Short: "Build the lua_bridge addon and install it into the example project",
	Long: `Builds the lua_bridge native extension with SCons and copies the resulting
library into project_example/addons/lua_bridge/bin/<platform>/.

Without a command, builds the debug library for the current platform.`,
	// Only the first word selects a command; anything after it is ignored
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.CheckVerboseEnv()
		if noColor || !isInteractive() {
			ui.SetColor(false)
			tui.SetColor(false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			runCurrent(cmd)
			return
		}
		dispatch(cmd, args[0])
	},
}

// Execute runs the root command. Every failure, including command-line
// misuse, is reported on the console and the process exits with status 0.
func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	execute()
}

func execute() {
	if err := rootCmd.Execute(); err != nil && !errors.Is(err, errReported) {
		ui.Error("%v", err)
	}
}

func init() {
	// Hide the completion command, it is not part of the build workflow
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show SCons commands, their output and copy details")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		reportUnknown(cmd, flagArgument(err))
		return errReported
	})

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

// dispatch runs the subcommand named name, ignoring case. Unknown names are
// reported and nothing else happens.
func dispatch(cmd *cobra.Command, name string) {
	name = strings.ToLower(name)

	for _, c := range cmd.Commands() {
		if c.Name() == name && c.Run != nil {
			c.Run(c, nil)
			return
		}
	}

	reportUnknown(cmd, name)
}

func reportUnknown(cmd *cobra.Command, name string) {
	ui.Error("Unknown command: %s", name)
	ui.Info("Use '%s help' for usage information", cmd.Root().Name())
}

// flagArgument recovers the command-line word a flag parsing error is about
func flagArgument(err error) string {
	var notExist *pflag.NotExistError
	if errors.As(err, &notExist) {
		if shorthands := notExist.GetSpecifiedShortnames(); shorthands != "" {
			return "-" + shorthands
		}
		return "--" + notExist.GetSpecifiedName()
	}
	return err.Error()
}

// commandContext returns the context cobra attached to cmd, if any
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 80 // Consistent width for all tables

	out := cmd.OutOrStdout()
	root := cmd.Root()

	if cmd != root {
		_, _ = fmt.Fprintln(out, tui.RenderTitle(cmd.Short))
		if cmd.Long != "" {
			_, _ = fmt.Fprintln(out, cmd.Long)
		}
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "Usage:\n  %s\n", cmd.UseLine())
		return nil
	}

	// Print header box with title and description
	headerTable := tui.NewTable("")
	headerTable.SetTitle(root.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	headerTable.AddRow("Usage: " + root.Name() + " [command]")
	headerTable.AddRow("Runs scons in the current directory, then installs the library for the host application.")

	_, _ = fmt.Fprintln(out, headerTable.Render())
	_, _ = fmt.Fprintln(out)

	// Build commands table
	table := tui.NewTable("Command", "Description")
	table.SetTitle("Commands")
	table.SetMinWidth(tableWidth)

	for _, c := range root.Commands() {
		// Skip hidden commands and completion
		if c.Hidden || c.Name() == "completion" {
			continue
		}
		table.AddRow(c.Name(), c.Short)
	}

	_, _ = fmt.Fprintln(out, table.Render())

	return nil
}
