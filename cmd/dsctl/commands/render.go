package commands

import (
	"github.com/spf13/cobra"

	"github.com/oselz/docserver-deploy/cmd/dsctl/handlers"
)

// Render returns the command that prints all generated configuration.
func Render() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print all generated configuration and manifests",
		Long: `Print every document dsctl would write or apply, without touching
the host or the cluster: the sysctl override, the k3s config, the Traefik
overlay, and the application manifest set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: dsctl.yaml)")

	return cmd
}
