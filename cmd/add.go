package cmd

import (
	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/requirement"
	"github.com/spf13/cobra"
)

func init() {
	var comment string
	cmd := &cobra.Command{
		Use:   "add <specifier>",
		Short: "Add a dependency specifier to the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, inline := requirement.SplitComment(args[0])
			req, err := requirement.Parse(spec)
			if err != nil {
				return err
			}
			req.Comment = inline
			if comment != "" {
				req.Comment = comment
			}
			f, err := manifest.Load(resolveOne())
			if err != nil {
				return err
			}
			if err := f.Add(req); err != nil {
				return err
			}
			if err := f.Save(); err != nil {
				return err
			}
			logging.Success("added: " + req.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "inline comment to attach to the new entry")
	rootCmd.AddCommand(cmd)
}
