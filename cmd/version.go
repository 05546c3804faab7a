package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and Date are set at build time via -ldflags;
	// Version falls back to a dev marker when built without them.
	Version = "0.1.0-dev"
	Commit  string
	Date    string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cursorwarp %s\n", Version)
		fmt.Printf("commit: %s\n", Commit)
		fmt.Printf("built: %s\n", Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
