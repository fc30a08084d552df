package cmd

import (
	"os"
	"path/filepath"

	"github.com/reqfile/reqfile-cli/internal/assets"
	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the built-in default manifest if none exists",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			p := filepath.Join(dir, "requirements.txt")
			if _, err := os.Stat(p); err == nil {
				logging.Info("already exists: " + p)
				return nil
			}
			if err := assets.WriteDefaultManifestIfMissing(dir); err != nil {
				return err
			}
			logging.Success("wrote " + p)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
