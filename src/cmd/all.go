package cmd

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Build for all platforms (debug and release)",
	Long: `Build debug and release libraries for windows, linux and macos, in that order,
and install each one that builds. A failure does not stop the remaining builds.

Example:
  build-addon all`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newOrchestrator().BuildAll(commandContext(cmd))
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
