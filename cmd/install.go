package cmd

import (
	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manager"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/ui/console"
	"github.com/spf13/cobra"
)

func init() {
	var all bool
	var yes bool
	cmd := &cobra.Command{
		Use:   "install [name...]",
		Short: "Install manifest packages with pip",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := resolveManifests()
			set, err := manifest.LoadAll(files)
			if err != nil {
				return err
			}
			m := manager.New(config.Get(), set, files)
			if len(args) > 0 {
				if err := m.InstallPackages(args); err != nil {
					return err
				}
				logging.Success("install complete")
				return nil
			}
			ui := console.NewConsoleUI(m)
			return ui.RunInstallImperative(all, yes)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "install every manifest entry without selection")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes and install without prompting")
	rootCmd.AddCommand(cmd)
}
