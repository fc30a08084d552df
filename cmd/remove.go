package cmd

import (
	"fmt"

	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a dependency from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			f, err := manifest.Load(resolveOne())
			if err != nil {
				return err
			}
			if !yes {
				ok, err := console.ConfirmRemove(name)
				if err != nil {
					return err
				}
				if !ok {
					logging.Info("aborted")
					return nil
				}
			}
			if !f.Remove(name) {
				return fmt.Errorf("package not in manifest: %s", name)
			}
			if err := f.Save(); err != nil {
				return err
			}
			logging.Success("removed: " + name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes and remove without prompting")
	rootCmd.AddCommand(cmd)
}
