package ingress

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// helmChartConfig models the k3s HelmChartConfig overlay document. The
// embedded Helm controller merges valuesContent over the bundled chart's
// defaults; our side always regenerates the whole document.
type helmChartConfig struct {
	APIVersion string             `yaml:"apiVersion"`
	Kind       string             `yaml:"kind"`
	Metadata   overlayMetadata    `yaml:"metadata"`
	Spec       helmChartConfigSpec `yaml:"spec"`
}

type overlayMetadata struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
}

type helmChartConfigSpec struct {
	ValuesContent string `yaml:"valuesContent"`
}

// RenderOverlay renders the HelmChartConfig manifest carrying the Traefik
// values for the embedded Helm controller.
func RenderOverlay(cfg config.IngressConfig) ([]byte, error) {
	valuesYAML, err := BuildTraefikValues(cfg).ToYAML()
	if err != nil {
		return nil, err
	}

	doc := helmChartConfig{
		APIVersion: "helm.cattle.io/v1",
		Kind:       "HelmChartConfig",
		Metadata: overlayMetadata{
			Name:      "traefik",
			Namespace: "kube-system",
		},
		Spec: helmChartConfigSpec{
			ValuesContent: string(valuesYAML),
		},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return buf.Bytes(), nil
}

// ApplyOverlay overwrites the Traefik overlay in the k3s manifests
// directory. k3s watches the directory and reconciles the chart.
func ApplyOverlay(ctx context.Context, comm ssh.Communicator, cfg config.IngressConfig) error {
	data, err := RenderOverlay(cfg)
	if err != nil {
		return err
	}

	if err := comm.WriteFile(ctx, config.TraefikOverlayPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write traefik overlay: %w", err)
	}

	return nil
}
