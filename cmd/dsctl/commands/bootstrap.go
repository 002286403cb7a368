package commands

import (
	"github.com/spf13/cobra"

	"github.com/oselz/docserver-deploy/cmd/dsctl/handlers"
)

// Bootstrap returns the command that installs and configures k3s on the
// target host.
//
// The bootstrap process:
//  1. Writes the sysctl override allowing unprivileged port binding
//  2. Writes the k3s config disabling servicelb and metrics-server
//  3. Runs the k3s installer for the configured channel (rerun == upgrade)
//  4. Fetches the admin kubeconfig and rewrites it for remote access
//  5. Applies the Traefik overlay (ACME resolver, ports, persistence)
//
// Every generated file is overwritten wholesale; rerunning bootstrap always
// converges the host to the configured state.
//
// Environment variables:
//
//	INSTALL_K3S_CHANNEL: overrides the configured k3s release channel
//	DSCTL_SSH_KEY: overrides the configured SSH private key path
func Bootstrap() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Install and configure k3s on the target host",
		Long: `Install and configure a single-node k3s cluster on the target host.

The host is prepared over SSH: the privileged-port restriction is relaxed,
the bundled service load balancer and metrics server are disabled, k3s is
installed (or upgraded) from the configured channel, and the bundled
Traefik ingress controller is overlaid with an ACME TLS resolver and
persistent certificate storage.

Examples:
  # Bootstrap using dsctl.yaml in the current directory
  dsctl bootstrap

  # Bootstrap a specific host configuration
  dsctl bootstrap -c production.yaml

  # Track the latest channel instead of stable
  INSTALL_K3S_CHANNEL=latest dsctl bootstrap

  # See the generated files without touching the host
  dsctl bootstrap --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := handlers.BootstrapOptions{
				ConfigPath: configPath,
				DryRun:     dryRun,
			}
			return handlers.Bootstrap(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: dsctl.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be done without making changes")

	return cmd
}
