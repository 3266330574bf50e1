package cmd

import (
	"fmt"

	"github.com/lua-bridge/build-addon/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the build-addon version",
	Long:  `Display the current version of build-addon.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("build-addon %s", tui.RenderVersion(Version))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
