package host

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// k3sConfig models the subset of the k3s server configuration we manage.
type k3sConfig struct {
	// Disable lists bundled components k3s must not deploy. The service
	// load balancer is replaced by Traefik's host ports, and the metrics
	// server is not needed on a single-node docs host.
	Disable []string `yaml:"disable"`
}

// RenderK3sConfig returns the k3s server configuration disabling the
// built-in service load balancer and the metrics server.
func RenderK3sConfig() ([]byte, error) {
	cfg := k3sConfig{
		Disable: []string{"servicelb", "metrics-server"},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode k3s config: %w", err)
	}

	return buf.Bytes(), nil
}

// InstallCommand returns the installer invocation for the configured
// channel or pinned version. The same command performs initial install and
// upgrade; the installer is idempotent for an already-current host.
func InstallCommand(cluster config.ClusterConfig) string {
	selector := fmt.Sprintf("%s=%s", config.K3sChannelEnvVar, cluster.Channel)
	if cluster.Version != "" {
		selector = fmt.Sprintf("INSTALL_K3S_VERSION=%s", cluster.Version)
	}

	return fmt.Sprintf("curl -sfL %s | %s sh -", config.K3sInstallerURL, selector)
}

// InstallK3s writes the server configuration and runs the installer.
// The config file must exist before the installer starts the service so the
// disabled components never come up.
func InstallK3s(ctx context.Context, comm ssh.Communicator, cluster config.ClusterConfig) error {
	data, err := RenderK3sConfig()
	if err != nil {
		return err
	}

	if err := comm.WriteFile(ctx, config.K3sConfigPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write k3s config: %w", err)
	}

	if _, err := comm.Execute(ctx, InstallCommand(cluster)); err != nil {
		return fmt.Errorf("k3s install failed: %w", err)
	}

	return nil
}

// K3sVersion reports the installed k3s version on the host.
func K3sVersion(ctx context.Context, comm ssh.Communicator) (string, error) {
	output, err := comm.Execute(ctx, "k3s --version")
	if err != nil {
		return "", fmt.Errorf("failed to query k3s version: %w", err)
	}

	// First line looks like: k3s version v1.33.4+k3s1 (abcdef)
	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(line), nil
}
