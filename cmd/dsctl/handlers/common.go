// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/k8s"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
	"github.com/oselz/docserver-deploy/internal/transfer"
)

// kubeClient is the subset of the cluster client the handlers need.
// Satisfied by *k8s.Client and by fakes in tests.
type kubeClient interface {
	Apply(ctx context.Context, manifest string) error
	WaitForDeployment(ctx context.Context, namespace, name string, timeout time.Duration) error
	DeploymentReplicas(ctx context.Context, namespace, name string) (available, desired int32, err error)
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads and validates the configuration file.
	loadConfig = config.LoadFile

	// newCommunicator creates the SSH channel to the target host.
	newCommunicator = func(cfg *config.Config) (ssh.Communicator, error) {
		keyPath := expandPath(cfg.Host.SSHKeyPath)
		key, err := os.ReadFile(keyPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("failed to read SSH key %s: %w", keyPath, err)
		}

		return ssh.NewClient(&ssh.Config{
			Host:       cfg.Host.Address,
			Port:       cfg.Host.Port,
			User:       cfg.Host.User,
			PrivateKey: key,
		})
	}

	// newKubeClient creates the cluster client from a kubeconfig path.
	newKubeClient = func(kubeconfigPath string) (kubeClient, error) {
		return k8s.NewClient(kubeconfigPath)
	}

	// importImage streams a container image to the host.
	importImage = transfer.Import

	// timeNow supplies the deploy timestamp.
	timeNow = time.Now
)

// configPathOrDefault resolves the config file path.
func configPathOrDefault(path string) string {
	if path == "" {
		return config.DefaultConfigFile
	}
	return path
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
