// Package main is the entry point for the dsctl CLI.
//
// dsctl bootstraps a single-node k3s cluster with automatic TLS issuance
// and deploys the docserver documentation server into it. The cluster and
// the application are managed over SSH from an operator workstation; there
// is no agent on the host.
//
// Commands: init, bootstrap, deploy, render, status.
//
// For detailed usage information, run:
//
//	dsctl --help
package main

import (
	"fmt"
	"os"

	"github.com/oselz/docserver-deploy/cmd/dsctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
