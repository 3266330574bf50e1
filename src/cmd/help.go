package cmd

import (
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show this help message",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		target := cmd.Root()
		if len(args) > 0 {
			if c, _, err := target.Find(args[:1]); err == nil {
				target = c
			}
		}
		_ = customUsage(target)
	},
}
