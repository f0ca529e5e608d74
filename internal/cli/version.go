package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of leaderboardctl.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("leaderboardctl\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
