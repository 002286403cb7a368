package commands

import (
	"github.com/spf13/cobra"

	"github.com/oselz/docserver-deploy/cmd/dsctl/handlers"
)

// Status returns the command that reports host and workload state.
func Status() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report k3s and docserver status",
		Long: `Report the installed k3s version on the host and the readiness of
the docserver Deployment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: dsctl.yaml)")

	return cmd
}
