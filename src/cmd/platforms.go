package cmd

import (
	"fmt"

	"github.com/lua-bridge/build-addon/src/internal/platform"
	"github.com/spf13/cobra"
)

// displayNames are used in command descriptions
var displayNames = map[platform.Platform]string{
	platform.Windows: "Windows",
	platform.Linux:   "Linux",
	platform.MacOS:   "macOS",
}

// newPlatformCmd returns the command building the debug library of p
func newPlatformCmd(p platform.Platform) *cobra.Command {
	return &cobra.Command{
		Use:   p.String(),
		Short: fmt.Sprintf("Build for %s only", displayNames[p]),
		Long: fmt.Sprintf(`Build the debug library for %s and install it.

Example:
  build-addon %s`, displayNames[p], p),
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = newOrchestrator().BuildPlatform(commandContext(cmd), p)
		},
	}
}

func init() {
	for _, p := range platform.Known() {
		rootCmd.AddCommand(newPlatformCmd(p))
	}
}
