package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
host:
  address: docs.example.com
  ssh_key_path: /home/op/.ssh/id_ed25519
ingress:
  acme_email: ops@example.com
app:
  domain: docs.example.com
`

func TestLoadFile_Minimal(t *testing.T) {
	path := writeTestConfig(t, minimalConfig)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "docs.example.com", cfg.Host.Address)
	assert.Equal(t, "ops@example.com", cfg.Ingress.ACMEEmail)
	assert.Equal(t, "docs.example.com", cfg.App.Domain)
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeTestConfig(t, minimalConfig)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 22, cfg.Host.Port)
	assert.Equal(t, "root", cfg.Host.User)
	assert.Equal(t, DefaultK3sChannel, cfg.Cluster.Channel)
	assert.Equal(t, "k3s.yaml", cfg.Cluster.KubeconfigPath)
	assert.Equal(t, IngressModeEmbedded, cfg.Ingress.Mode)
	assert.Equal(t, "docserver", cfg.App.Name)
	assert.Equal(t, "default", cfg.App.Namespace)
	assert.Equal(t, "docserver", cfg.App.ImageRepository)
	assert.Equal(t, []string{"cargo", "build", "--release", "--target", "x86_64-unknown-linux-musl"}, cfg.Build.Command)
	assert.Equal(t, "target/x86_64-unknown-linux-musl/release/docserver", cfg.Build.BinaryPath)
	assert.Equal(t, "docker", cfg.Build.ContainerTool)
}

func TestLoadFile_ExplicitValuesPreserved(t *testing.T) {
	path := writeTestConfig(t, `
host:
  address: 10.0.0.5
  port: 2222
  user: deploy
  ssh_key_path: /keys/deploy
cluster:
  channel: latest
ingress:
  acme_email: certs@example.com
  expose_dns: true
app:
  name: docs
  namespace: docs
  domain: docs.example.com
  image_repository: registry.example.com/docs
build:
  container_tool: podman
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2222, cfg.Host.Port)
	assert.Equal(t, "deploy", cfg.Host.User)
	assert.Equal(t, "latest", cfg.Cluster.Channel)
	assert.True(t, cfg.Ingress.ExposeDNS)
	assert.Equal(t, "docs", cfg.App.Name)
	assert.Equal(t, "registry.example.com/docs", cfg.App.ImageRepository)
	assert.Equal(t, "podman", cfg.Build.ContainerTool)
}

func TestLoadFile_ChannelEnvOverride(t *testing.T) {
	t.Setenv(K3sChannelEnvVar, "v1.33")

	path := writeTestConfig(t, minimalConfig)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "v1.33", cfg.Cluster.Channel)
}

func TestLoadFile_SSHKeyEnvOverride(t *testing.T) {
	t.Setenv(SSHKeyEnvVar, "/run/secrets/deploy_key")

	path := writeTestConfig(t, minimalConfig)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/run/secrets/deploy_key", cfg.Host.SSHKeyPath)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeTestConfig(t, "host: [not: valid")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}
