package host

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// FetchKubeconfig retrieves the admin kubeconfig from the host and rewrites
// the server address from the loopback the installer emits to the host's
// public address, so later commands can reach the API remotely.
func FetchKubeconfig(ctx context.Context, comm ssh.Communicator, hostAddress string) ([]byte, error) {
	data, err := comm.FetchFile(ctx, config.RemoteKubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kubeconfig: %w", err)
	}

	return RewriteKubeconfig(data, hostAddress), nil
}

// RewriteKubeconfig replaces the loopback server address with the host
// address.
func RewriteKubeconfig(data []byte, hostAddress string) []byte {
	rewritten := strings.ReplaceAll(string(data), "https://127.0.0.1:6443", fmt.Sprintf("https://%s:6443", hostAddress))
	return []byte(rewritten)
}

// WriteKubeconfig persists the kubeconfig locally with restrictive
// permissions.
func WriteKubeconfig(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	return nil
}
