package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Validate checks the configuration for errors after defaults are applied.
func (c *Config) Validate() error {
	var errs []string

	if c.Host.Address == "" {
		errs = append(errs, "host.address is required")
	}
	if c.Host.SSHKeyPath == "" {
		errs = append(errs, "host.ssh_key_path is required (or set DSCTL_SSH_KEY)")
	}

	if c.Cluster.Version != "" {
		if _, err := semver.NewVersion(c.Cluster.Version); err != nil {
			errs = append(errs, fmt.Sprintf("cluster.version %q is not valid semver: %v", c.Cluster.Version, err))
		}
	}

	if c.Ingress.ACMEEmail == "" {
		errs = append(errs, "ingress.acme_email is required for certificate issuance")
	} else if !strings.Contains(c.Ingress.ACMEEmail, "@") {
		errs = append(errs, fmt.Sprintf("ingress.acme_email %q is not an email address", c.Ingress.ACMEEmail))
	}

	switch c.Ingress.Mode {
	case IngressModeEmbedded, IngressModeHelm:
	default:
		errs = append(errs, fmt.Sprintf("ingress.mode %q must be %q or %q", c.Ingress.Mode, IngressModeEmbedded, IngressModeHelm))
	}

	if c.App.Domain == "" {
		errs = append(errs, "app.domain is required")
	}

	switch c.Build.ContainerTool {
	case "docker", "podman":
	default:
		errs = append(errs, fmt.Sprintf("build.container_tool %q must be docker or podman", c.Build.ContainerTool))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
