package handlers

import (
	"context"
	"fmt"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/host"
	"github.com/oselz/docserver-deploy/internal/image"
	"github.com/oselz/docserver-deploy/internal/ingress"
	"github.com/oselz/docserver-deploy/internal/manifest"
)

// Render prints every generated document without side effects.
func Render(_ context.Context, configPath string) error {
	cfg, err := loadConfig(configPathOrDefault(configPath))
	if err != nil {
		return err
	}

	k3sCfg, err := host.RenderK3sConfig()
	if err != nil {
		return err
	}

	overlay, err := ingress.RenderOverlay(cfg.Ingress)
	if err != nil {
		return err
	}

	ref, err := image.Tag(cfg.App.ImageRepository, timeNow())
	if err != nil {
		return err
	}

	manifests, err := manifest.Build(cfg.App, ref).Render()
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n%s\n", config.SysctlFilePath, host.RenderSysctl())
	fmt.Printf("# %s\n%s\n", config.K3sConfigPath, k3sCfg)
	fmt.Printf("# %s\n%s\n", config.TraefikOverlayPath, overlay)
	fmt.Printf("# application manifests (image %s)\n%s", ref, manifests)

	return nil
}
