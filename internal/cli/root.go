package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/psrun/psrun/internal/filesystem"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RunCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "psrun [script [args...]]",
		Short: "Find and run project scripts",
		Long: `psrun detects the project surrounding the current directory, collects its
runnable scripts, and runs the one you pick, either directly by name or
through an interactive listing.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if cmd.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: cmd.Run,
	}

	flags := rootCmd.Flags()
	// Flags after the script name belong to the script, not to psrun.
	flags.SetInterspersed(false)
	flags.StringVarP(&cmd.dir, "dir", "d", "", "directory to start project detection from")
	flags.StringVarP(&cmd.project, "project", "p", "", "registered project alias to run in")
	flags.BoolVarP(&cmd.listOnly, "list", "l", false, "print the script listing and exit")
	flags.BoolVar(&cmd.tui, "tui", false, "start in the full-screen interface")
	flags.StringVar(&cmd.theme, "theme", "", "color theme (dark, light, nocolor)")
	flags.BoolVar(&cmd.loop, "loop", false, "return to the listing after a script finishes")
	rootCmd.PersistentFlags().BoolVarP(&cmd.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewProjectsCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	return NewRootCommand(fs).Execute()
}
