package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dockstar/dockstar/internal/config"
	"github.com/dockstar/dockstar/internal/dock"
	"github.com/dockstar/dockstar/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the dock config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config document the dock would start with",
	Long: `Print the config document the dock would start with.

A missing file shows the built-in defaults placed for --screen (1920x1080
when unset). A malformed file shows an empty dock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		screen, err := screenOrDefault(model.Size{
			Width:  config.DefaultScreenWidth,
			Height: config.DefaultScreenHeight,
		})
		if err != nil {
			return err
		}

		state := dock.NewState(fsys, screen, nil)
		cfg := state.Load(path)
		if state.Status() == model.StatusDefault {
			PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("no config file at %s, showing defaults", path))
		}
		return outputJSON(cmd.OutOrStdout(), cfg.ToDocument())
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
