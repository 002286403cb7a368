package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when -c is not given.
const DefaultConfigFile = "dsctl.yaml"

// LoadFile reads and parses the configuration from a YAML file, applies
// environment overrides and defaults, and validates the result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides. The channel
// variable is the same one the upstream k3s installer consumes, so values
// flow through unchanged.
func (c *Config) applyEnvOverrides() {
	if channel := os.Getenv(K3sChannelEnvVar); channel != "" {
		c.Cluster.Channel = channel
	}
	if keyPath := os.Getenv(SSHKeyEnvVar); keyPath != "" {
		c.Host.SSHKeyPath = keyPath
	}
}

// applyDefaults fills unset fields with their defaults.
func (c *Config) applyDefaults() {
	if c.Host.Port == 0 {
		c.Host.Port = 22
	}
	if c.Host.User == "" {
		c.Host.User = "root"
	}

	if c.Cluster.Channel == "" {
		c.Cluster.Channel = DefaultK3sChannel
	}
	if c.Cluster.KubeconfigPath == "" {
		c.Cluster.KubeconfigPath = "k3s.yaml"
	}

	if c.Ingress.Mode == "" {
		c.Ingress.Mode = IngressModeEmbedded
	}

	if c.App.Name == "" {
		c.App.Name = "docserver"
	}
	if c.App.Namespace == "" {
		c.App.Namespace = "default"
	}
	if c.App.ImageRepository == "" {
		c.App.ImageRepository = c.App.Name
	}

	if c.Build.SourceDir == "" {
		c.Build.SourceDir = "."
	}
	if len(c.Build.Command) == 0 {
		c.Build.Command = []string{"cargo", "build", "--release", "--target", "x86_64-unknown-linux-musl"}
	}
	if c.Build.BinaryPath == "" {
		c.Build.BinaryPath = "target/x86_64-unknown-linux-musl/release/docserver"
	}
	if c.Build.StaticDir == "" {
		c.Build.StaticDir = "static"
	}
	if c.Build.StagingDir == "" {
		c.Build.StagingDir = "build/stage"
	}
	if c.Build.ContainerTool == "" {
		c.Build.ContainerTool = "docker"
	}
}
