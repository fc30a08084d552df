package cmd

import (
	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/manager"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var showInstalled bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manifest entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := resolveManifests()
			set, err := manifest.LoadAll(files)
			if err != nil {
				return err
			}
			m := manager.New(config.Get(), set, files)
			ui := console.NewConsoleUI(m)
			return ui.RunListImperative(showInstalled)
		},
	}
	cmd.Flags().BoolVar(&showInstalled, "installed", false, "also query pip for installed versions")
	rootCmd.AddCommand(cmd)
}
