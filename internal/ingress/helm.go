package ingress

import (
	"context"
	"fmt"
	"os"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/release"
	"helm.sh/helm/v3/pkg/repo"

	"github.com/oselz/docserver-deploy/internal/config"
)

const (
	traefikRepoURL     = "https://traefik.github.io/charts"
	traefikChartName   = "traefik"
	traefikReleaseName = "traefik"
	traefikNamespace   = "kube-system"

	installTimeout = 10 * time.Minute
)

// HelmInstaller installs or upgrades the Traefik chart directly against the
// cluster API, for hosts where the embedded HelmChartConfig path is not
// wanted.
type HelmInstaller struct {
	actionConfig *action.Configuration
}

// NewHelmInstaller creates an installer from kubeconfig bytes.
func NewHelmInstaller(kubeconfig []byte) (*HelmInstaller, error) {
	actionConfig := new(action.Configuration)
	restGetter := newInMemoryRESTClientGetter(kubeconfig, traefikNamespace)

	// Suppress helm's debug output
	if err := actionConfig.Init(restGetter, traefikNamespace, "secret", func(format string, v ...interface{}) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize helm action config: %w", err)
	}

	return &HelmInstaller{actionConfig: actionConfig}, nil
}

// InstallOrUpgrade converges the Traefik release to the given values.
func (h *HelmInstaller) InstallOrUpgrade(ctx context.Context, cfg config.IngressConfig) (*release.Release, error) {
	values := BuildTraefikValues(cfg)

	histClient := action.NewHistory(h.actionConfig)
	histClient.Max = 1
	if _, err := histClient.Run(traefikReleaseName); err != nil {
		return h.install(ctx, cfg.ChartVersion, values)
	}
	return h.upgrade(ctx, cfg.ChartVersion, values)
}

func (h *HelmInstaller) install(ctx context.Context, version string, values Values) (*release.Release, error) {
	installClient := action.NewInstall(h.actionConfig)
	installClient.ReleaseName = traefikReleaseName
	installClient.Namespace = traefikNamespace
	installClient.CreateNamespace = true
	installClient.Version = version
	installClient.Wait = true
	installClient.Timeout = installTimeout

	chrt, err := loadTraefikChart(version)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return installClient.RunWithContext(ctx, chrt, values)
}

func (h *HelmInstaller) upgrade(ctx context.Context, version string, values Values) (*release.Release, error) {
	upgradeClient := action.NewUpgrade(h.actionConfig)
	upgradeClient.Namespace = traefikNamespace
	upgradeClient.Version = version
	upgradeClient.Wait = true
	upgradeClient.Timeout = installTimeout
	// Full overwrite each run, never merge with the deployed values
	upgradeClient.ReuseValues = false

	chrt, err := loadTraefikChart(version)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	return upgradeClient.RunWithContext(ctx, traefikReleaseName, chrt, values)
}

func loadTraefikChart(version string) (*chart.Chart, error) {
	settings := cli.New()

	chartPath, err := repo.FindChartInRepoURL(
		traefikRepoURL,
		traefikChartName,
		version,
		"", "", "",
		getter.All(settings),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find chart %s in repo %s: %w", traefikChartName, traefikRepoURL, err)
	}

	defer func() {
		_ = os.Remove(chartPath)
	}()

	return loader.Load(chartPath)
}
