package ingress

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oselz/docserver-deploy/internal/config"
)

// Values represents helm chart values as a map.
type Values map[string]any

// ToYAML converts values to YAML bytes.
func (v Values) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode values to YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// BuildTraefikValues constructs the Traefik chart values from the ingress
// configuration. The same values feed both the embedded HelmChartConfig
// overlay and the direct chart install.
func BuildTraefikValues(cfg config.IngressConfig) Values {
	values := Values{
		"additionalArguments": []string{
			fmt.Sprintf("--certificatesresolvers.%s.acme.email=%s", config.ACMEResolverName, cfg.ACMEEmail),
			fmt.Sprintf("--certificatesresolvers.%s.acme.storage=/data/acme.json", config.ACMEResolverName),
			fmt.Sprintf("--certificatesresolvers.%s.acme.tlschallenge=true", config.ACMEResolverName),
			fmt.Sprintf("--certificatesresolvers.%s.acme.caserver=%s", config.ACMEResolverName, config.ACMEDirectoryURL),
		},
		"persistence": Values{
			"enabled":      true,
			"size":         config.VolumeSize,
			"storageClass": config.StorageClass,
			"path":         "/data",
		},
		"ports": buildPorts(cfg),
	}

	return values
}

// buildPorts returns the entrypoint bindings. web, websecure, and the
// traefik admin entrypoint are always present; the DNS bindings only in the
// variant that fronts a DNS service.
func buildPorts(cfg config.IngressConfig) Values {
	ports := Values{
		"web": Values{
			"port":        80,
			"expose":      Values{"default": true},
			"exposedPort": 80,
		},
		"websecure": Values{
			"port":        443,
			"expose":      Values{"default": true},
			"exposedPort": 443,
			"tls": Values{
				"enabled": true,
			},
		},
		"traefik": Values{
			"port": 9000,
		},
	}

	if cfg.ExposeDNS {
		ports["dns-tcp"] = Values{
			"port":        53,
			"protocol":    "TCP",
			"expose":      Values{"default": true},
			"exposedPort": 53,
		}
		ports["dns-udp"] = Values{
			"port":        53,
			"protocol":    "UDP",
			"expose":      Values{"default": true},
			"exposedPort": 53,
		}
	}

	return ports
}
