package handlers

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// fakeCommunicator records host operations in invocation order.
type fakeCommunicator struct {
	ops   []string
	files map[string][]byte
	fetch map[string][]byte
}

func newFakeCommunicator() *fakeCommunicator {
	return &fakeCommunicator{
		files: make(map[string][]byte),
		fetch: make(map[string][]byte),
	}
}

func (f *fakeCommunicator) Execute(_ context.Context, command string) (string, error) {
	f.ops = append(f.ops, "execute: "+command)
	return "", nil
}

func (f *fakeCommunicator) ExecuteStream(_ context.Context, command string, stdin io.Reader) error {
	f.ops = append(f.ops, "stream: "+command)
	_, err := io.Copy(io.Discard, stdin)
	return err
}

func (f *fakeCommunicator) WriteFile(_ context.Context, path string, data []byte, _ fs.FileMode) error {
	f.ops = append(f.ops, "write: "+path)
	f.files[path] = data
	return nil
}

func (f *fakeCommunicator) FetchFile(_ context.Context, path string) ([]byte, error) {
	f.ops = append(f.ops, "fetch: "+path)
	data, ok := f.fetch[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

// fakeKubeClient records applied manifests and rollout waits.
type fakeKubeClient struct {
	applied   []string
	waited    []string
	applyErr  error
	waitErr   error
	available int32
	desired   int32
	statusErr error
}

func (f *fakeKubeClient) Apply(_ context.Context, manifest string) error {
	f.applied = append(f.applied, manifest)
	return f.applyErr
}

func (f *fakeKubeClient) WaitForDeployment(_ context.Context, namespace, name string, _ time.Duration) error {
	f.waited = append(f.waited, namespace+"/"+name)
	return f.waitErr
}

func (f *fakeKubeClient) DeploymentReplicas(context.Context, string, string) (int32, int32, error) {
	return f.available, f.desired, f.statusErr
}

// testConfig returns a fully populated configuration with the kubeconfig
// destination under the test's temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Host.Address = "docs.example.com"
	cfg.Host.Port = 22
	cfg.Host.User = "root"
	cfg.Host.SSHKeyPath = "/keys/id_ed25519"
	cfg.Cluster.Channel = "stable"
	cfg.Cluster.KubeconfigPath = filepath.Join(t.TempDir(), "k3s.yaml")
	cfg.Ingress.ACMEEmail = "ops@example.com"
	cfg.Ingress.Mode = config.IngressModeEmbedded
	cfg.App.Name = "docserver"
	cfg.App.Namespace = "default"
	cfg.App.Domain = "docs.example.com"
	cfg.App.ImageRepository = "docserver"
	cfg.Build.Command = []string{"cargo", "build", "--release"}
	cfg.Build.BinaryPath = "target/release/docserver"
	cfg.Build.StaticDir = "static"
	cfg.Build.StagingDir = filepath.Join(t.TempDir(), "stage")
	cfg.Build.ContainerTool = "docker"
	return cfg
}

// withTestDoubles swaps the factory variables for the duration of a test.
func withTestDoubles(t *testing.T, cfg *config.Config, comm *fakeCommunicator, kube *fakeKubeClient) {
	t.Helper()

	origLoad := loadConfig
	origComm := newCommunicator
	origKube := newKubeClient
	origNow := timeNow

	loadConfig = func(string) (*config.Config, error) { return cfg, nil }
	newCommunicator = func(*config.Config) (ssh.Communicator, error) { return comm, nil }
	newKubeClient = func(string) (kubeClient, error) { return kube, nil }
	timeNow = func() time.Time { return time.Date(2026, 8, 23, 14, 25, 57, 0, time.UTC) }

	t.Cleanup(func() {
		loadConfig = origLoad
		newCommunicator = origComm
		newKubeClient = origKube
		timeNow = origNow
	})
}
