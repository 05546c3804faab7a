package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cursorwarp/cursorwarp/internal/config"
	"github.com/cursorwarp/cursorwarp/internal/dispatcher"
)

var (
	rootCmd = &cobra.Command{
		Use:   "cursorwarp",
		Short: "Seamless cursor motion across monitors of differing size",
		Long: `cursorwarp intercepts every raw mouse-move event on the system, and when the
cursor crosses from one monitor to another, replaces the post-crossing
position with one that preserves the percentage traveled along the shared
edge, so a taller or wider neighbor doesn't make the cursor visibly jump.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode := dispatcher.Run(config.FromEnv())
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
}
