package cmd

import (
	"os"

	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate [file-or-dir...]",
		Short: "Parse manifests and check them against the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = resolveManifests()
			}
			files, err := expandDirs(paths)
			if err != nil {
				return err
			}
			set, err := manifest.LoadAll(files)
			if err != nil {
				return err
			}
			if err := manifest.ValidateAgainstSchema(set.Requirements); err != nil {
				return err
			}
			logging.Success("Manifest is valid")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

func expandDirs(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			found, err := manifest.Discover(p)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
