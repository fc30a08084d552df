package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the requirement set as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := manifest.LoadAll(resolveManifests())
			if err != nil {
				return err
			}
			out := manifest.NewExport(set.Requirements)
			switch format {
			case "json":
				b, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
			case "yaml":
				b, err := yaml.Marshal(out)
				if err != nil {
					return err
				}
				fmt.Print(string(b))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(cmd)
}
