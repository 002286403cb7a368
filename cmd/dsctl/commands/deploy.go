package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/oselz/docserver-deploy/cmd/dsctl/handlers"
)

// Deploy returns the command that builds and deploys the docserver.
//
// The deploy process:
//  1. Compiles the release binary for the static Linux target
//  2. Resets and repopulates the image staging directory
//  3. Builds the container image with a timestamp-unique tag
//  4. Streams the image over SSH into the remote containerd
//  5. Applies the manifest set (PVC, Service, Deployment, IngressRoute)
//  6. Waits for the rollout to become ready
func Deploy() *cobra.Command {
	var (
		configPath string
		skipBuild  bool
		dryRun     bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build and deploy the docserver to the cluster",
		Long: `Build the docserver image and deploy it to the cluster.

The binary is compiled for x86_64-unknown-linux-musl, packaged with the
static assets into a minimal image, and streamed over SSH straight into the
host's containerd - no registry involved. The manifest set is then applied
through the cluster API and the command waits for the new pods to become
ready.

Each deploy produces a unique image tag derived from the current time, so
the Deployment always rolls to the freshly imported image.

Examples:
  # Full build and deploy
  dsctl deploy

  # Reuse the previously built binary
  dsctl deploy --skip-build

  # Print the manifests without deploying
  dsctl deploy --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := handlers.DeployOptions{
				ConfigPath:  configPath,
				SkipBuild:   skipBuild,
				DryRun:      dryRun,
				WaitTimeout: timeout,
			}
			return handlers.Deploy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: dsctl.yaml)")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Skip binary compilation and reuse the existing artifact")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the manifests without deploying")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for the rollout")

	return cmd
}
