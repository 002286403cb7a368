package commands

import (
	"github.com/spf13/cobra"

	"github.com/oselz/docserver-deploy/cmd/dsctl/handlers"
)

// Init returns the command that writes a starter configuration file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a commented starter dsctl.yaml to the current directory.

Edit the generated file to point at your host, then run:
  dsctl bootstrap
  dsctl deploy`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "dsctl.yaml", "Path for the generated configuration")

	return cmd
}
