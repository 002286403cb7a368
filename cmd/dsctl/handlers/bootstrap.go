package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/host"
	"github.com/oselz/docserver-deploy/internal/ingress"
)

// BootstrapOptions holds options for the bootstrap command.
type BootstrapOptions struct {
	ConfigPath string
	DryRun     bool
}

// installTraefikChart is a factory variable so tests can avoid a live
// cluster in helm mode.
var installTraefikChart = func(ctx context.Context, kubeconfig []byte, cfg config.IngressConfig) error {
	installer, err := ingress.NewHelmInstaller(kubeconfig)
	if err != nil {
		return err
	}
	_, err = installer.InstallOrUpgrade(ctx, cfg)
	return err
}

// Bootstrap installs and configures k3s on the target host.
//
// The sequence is strictly linear and aborts on the first failure; rerunning
// the command is the recovery path. Every file written to the host is a
// wholesale overwrite, so a rerun always converges to the configured state.
func Bootstrap(ctx context.Context, opts BootstrapOptions) error {
	cfg, err := loadConfig(configPathOrDefault(opts.ConfigPath))
	if err != nil {
		return err
	}

	if opts.DryRun {
		return printBootstrapPlan(cfg)
	}

	comm, err := newCommunicator(cfg)
	if err != nil {
		return err
	}

	log.Println("Phase 1/4: Relaxing privileged-port restriction...")
	if err := host.ApplySysctl(ctx, comm); err != nil {
		return fmt.Errorf("sysctl configuration failed: %w", err)
	}

	log.Printf("Phase 2/4: Installing k3s (channel %s)...", cfg.Cluster.Channel)
	if err := host.InstallK3s(ctx, comm, cfg.Cluster); err != nil {
		return fmt.Errorf("k3s installation failed: %w", err)
	}

	log.Println("Phase 3/4: Fetching kubeconfig...")
	kubeconfig, err := host.FetchKubeconfig(ctx, comm, cfg.Host.Address)
	if err != nil {
		return fmt.Errorf("kubeconfig retrieval failed: %w", err)
	}
	if err := host.WriteKubeconfig(cfg.Cluster.KubeconfigPath, kubeconfig); err != nil {
		return err
	}

	log.Println("Phase 4/4: Configuring Traefik ingress...")
	switch cfg.Ingress.Mode {
	case config.IngressModeHelm:
		if err := installTraefikChart(ctx, kubeconfig, cfg.Ingress); err != nil {
			return fmt.Errorf("traefik chart installation failed: %w", err)
		}
	default:
		if err := ingress.ApplyOverlay(ctx, comm, cfg.Ingress); err != nil {
			return fmt.Errorf("traefik overlay failed: %w", err)
		}
	}

	printBootstrapSuccess(cfg)
	return nil
}

// printBootstrapPlan prints the files bootstrap would write.
func printBootstrapPlan(cfg *config.Config) error {
	k3sCfg, err := host.RenderK3sConfig()
	if err != nil {
		return err
	}
	overlay, err := ingress.RenderOverlay(cfg.Ingress)
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n%s\n", config.SysctlFilePath, host.RenderSysctl())
	fmt.Printf("# %s\n%s\n", config.K3sConfigPath, k3sCfg)
	fmt.Printf("# install command\n%s\n\n", host.InstallCommand(cfg.Cluster))
	fmt.Printf("# %s\n%s", config.TraefikOverlayPath, overlay)

	return nil
}

// printBootstrapSuccess outputs completion message and next steps.
func printBootstrapSuccess(cfg *config.Config) {
	fmt.Printf("\nBootstrap complete!\n")
	fmt.Printf("Kubeconfig saved to: %s\n", cfg.Cluster.KubeconfigPath)
	fmt.Printf("\nAccess your cluster:\n")
	fmt.Printf("  export KUBECONFIG=%s\n", cfg.Cluster.KubeconfigPath)
	fmt.Printf("  kubectl get nodes\n")
	fmt.Printf("\nDeploy the docserver:\n")
	fmt.Printf("  dsctl deploy\n")
}
