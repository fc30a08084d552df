package cmd

import (
	"fmt"
	"os"

	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Canonicalize a manifest (sorted, normalized specifiers)",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveOne()
			if len(args) == 1 {
				path = args[0]
			}
			f, err := manifest.Load(path)
			if err != nil {
				return err
			}
			canon := f.Canonical()
			if !write {
				fmt.Print(canon)
				return nil
			}
			if err := os.WriteFile(path, []byte(canon), 0o644); err != nil {
				return err
			}
			logging.Success("formatted: " + path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file instead of printing")
	rootCmd.AddCommand(cmd)
}
