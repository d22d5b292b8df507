package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the config file so the next start uses the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if err := fsys.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				PrintWarning(cmd.OutOrStdout(), fmt.Sprintf("no config file at %s", path))
				return nil
			}
			return fmt.Errorf("failed to remove config %s: %w", path, err)
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("removed %s", path))
		return nil
	},
}
