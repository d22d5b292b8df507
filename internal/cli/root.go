// Package cli implements the dockstar command tree.
package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	screenFlag string
	debug      bool

	// Run flags
	noWatch bool

	// fsys backs every config read and write made by the commands
	fsys afero.Fs = afero.NewOsFs()
)

// rootCmd runs the dock when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:     "dockstar",
	Version: "dev",
	Short:   "A small desktop dock of icon shortcuts",
	Long: `dockstar shows a row of icon shortcuts in a borderless window near the
bottom of the screen.

The icon list and the dock position are kept in a JSON config file and saved
when the dock exits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDock(cmd)
	},
}

// SetVersion sets the version printed by --version. Empty values are ignored.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default <user config dir>/dockstar/config.json)")
	rootCmd.PersistentFlags().StringVar(&screenFlag, "screen", "", "screen size as WIDTHxHEIGHT, used to place the default dock")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes on disk")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}
