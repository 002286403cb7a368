package handlers

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/oselz/docserver-deploy/internal/host"
)

// Status reports the installed k3s version and docserver readiness.
func Status(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPathOrDefault(configPath))
	if err != nil {
		return err
	}

	comm, err := newCommunicator(cfg)
	if err != nil {
		return err
	}

	version, err := host.K3sVersion(ctx, comm)
	if err != nil {
		return err
	}
	fmt.Printf("Host:   %s\n", cfg.Host.Address)
	fmt.Printf("k3s:    %s\n", version)

	client, err := newKubeClient(cfg.Cluster.KubeconfigPath)
	if err != nil {
		return err
	}

	available, desired, err := client.DeploymentReplicas(ctx, cfg.App.Namespace, cfg.App.Name)
	if err != nil {
		// Only a missing Deployment means "not deployed yet"; anything
		// else (auth, network) must surface.
		if apierrors.IsNotFound(err) {
			fmt.Printf("%s: not deployed\n", cfg.App.Name)
			return nil
		}
		return err
	}

	state := "not ready"
	if desired > 0 && available == desired {
		state = "ready"
	}
	fmt.Printf("%s: %s (%d/%d replicas available)\n", cfg.App.Name, state, available, desired)

	return nil
}
