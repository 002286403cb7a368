package handlers

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oselz/docserver-deploy/internal/config"
)

func TestBootstrap(t *testing.T) {
	cfg := testConfig(t)
	comm := newFakeCommunicator()
	comm.fetch[config.RemoteKubeconfigPath] = []byte("server: https://127.0.0.1:6443\n")
	withTestDoubles(t, cfg, comm, &fakeKubeClient{})

	err := Bootstrap(context.Background(), BootstrapOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"write: " + config.SysctlFilePath,
		"execute: sysctl --system",
		"write: " + config.K3sConfigPath,
		"execute: curl -sfL https://get.k3s.io | INSTALL_K3S_CHANNEL=stable sh -",
		"fetch: " + config.RemoteKubeconfigPath,
		"write: " + config.TraefikOverlayPath,
	}, comm.ops)
}

func TestBootstrap_WritesRewrittenKubeconfig(t *testing.T) {
	cfg := testConfig(t)
	comm := newFakeCommunicator()
	comm.fetch[config.RemoteKubeconfigPath] = []byte("server: https://127.0.0.1:6443\n")
	withTestDoubles(t, cfg, comm, &fakeKubeClient{})

	require.NoError(t, Bootstrap(context.Background(), BootstrapOptions{}))

	data, err := os.ReadFile(cfg.Cluster.KubeconfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://docs.example.com:6443")
}

func TestBootstrap_HelmMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ingress.Mode = config.IngressModeHelm
	comm := newFakeCommunicator()
	comm.fetch[config.RemoteKubeconfigPath] = []byte("server: https://127.0.0.1:6443\n")
	withTestDoubles(t, cfg, comm, &fakeKubeClient{})

	installed := false
	origInstall := installTraefikChart
	installTraefikChart = func(_ context.Context, kubeconfig []byte, _ config.IngressConfig) error {
		installed = true
		assert.Contains(t, string(kubeconfig), "docs.example.com")
		return nil
	}
	t.Cleanup(func() { installTraefikChart = origInstall })

	require.NoError(t, Bootstrap(context.Background(), BootstrapOptions{}))

	assert.True(t, installed)
	assert.NotContains(t, comm.ops, "write: "+config.TraefikOverlayPath)
}

func TestBootstrap_KubeconfigFetchFailure(t *testing.T) {
	cfg := testConfig(t)
	comm := newFakeCommunicator()
	withTestDoubles(t, cfg, comm, &fakeKubeClient{})

	err := Bootstrap(context.Background(), BootstrapOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kubeconfig retrieval failed")
}

func TestBootstrap_DryRun(t *testing.T) {
	cfg := testConfig(t)
	comm := newFakeCommunicator()
	withTestDoubles(t, cfg, comm, &fakeKubeClient{})

	require.NoError(t, Bootstrap(context.Background(), BootstrapOptions{DryRun: true}))

	assert.Empty(t, comm.ops)
}
