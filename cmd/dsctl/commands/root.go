// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the dsctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dsctl",
		Short: "Bootstrap k3s and deploy the docserver",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Bootstrap())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Status())

	// Utility commands
	cmd.AddCommand(Render())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
