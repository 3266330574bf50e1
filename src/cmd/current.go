package cmd

import (
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Build for current platform only (debug)",
	Long: `Build the debug library for the platform this command runs on and install it.
This is what build-addon does when no command is given.

Example:
  build-addon current`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCurrent(cmd)
	},
}

func runCurrent(cmd *cobra.Command) {
	_ = newOrchestrator().BuildCurrent(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
