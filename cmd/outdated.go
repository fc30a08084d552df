package cmd

import (
	"fmt"
	"time"

	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/manager"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/pypi"
	"github.com/reqfile/reqfile-cli/internal/state"
	"github.com/reqfile/reqfile-cli/internal/ui/console"
	"github.com/spf13/cobra"
)

const lookupCacheTTL = 24 * time.Hour

func init() {
	var noCache bool
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Check manifest constraints against the package index",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := resolveManifests()
			set, err := manifest.LoadAll(files)
			if err != nil {
				return err
			}
			cfg := config.Get()
			m := manager.New(cfg, set, files)
			client := pypi.NewClient(cfg.IndexURL)

			var cache manager.VersionCache
			if !noCache {
				st, err := state.NewManager(cfgDir, lookupCacheTTL)
				if err != nil {
					return err
				}
				cache = st
			}
			rows := m.Outdated(client, cache, console.NewConsoleReporter())
			fmt.Print(console.RenderOutdated(rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always query the index, ignoring cached lookups")
	rootCmd.AddCommand(cmd)
}
