package config

import (
	"fmt"
	"os"
)

// starterConfig is the commented template written by dsctl init.
const starterConfig = `# dsctl configuration
#
# Target host. All bootstrap and deploy operations run over SSH.
host:
  address: docs.example.com
  user: root
  ssh_key_path: ~/.ssh/id_ed25519

# k3s installation. Rerunning bootstrap upgrades to the channel's latest.
cluster:
  channel: stable
  kubeconfig_path: k3s.yaml

# Traefik overlay and TLS issuance.
ingress:
  acme_email: ops@example.com
  # expose_dns: true    # additionally bind :53 tcp/udp
  # mode: helm          # install the chart directly instead of via k3s

# docserver workload.
app:
  name: docserver
  domain: docs.example.com
  image_repository: docserver

# Binary and image build.
build:
  source_dir: ../docserver
  # command: [cargo, build, --release, --target, x86_64-unknown-linux-musl]
  # container_tool: docker
`

// WriteStarter writes the starter configuration template to path,
// overwriting any existing file.
func WriteStarter(path string) error {
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
