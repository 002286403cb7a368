package manifest

import (
	"bytes"
	"fmt"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/oselz/docserver-deploy/internal/config"
)

// Set holds the full manifest set for one deploy, in apply order: the claim
// first so the Deployment can bind it, the route last so traffic only
// switches once the workload exists.
type Set struct {
	Objects []any
}

// Build constructs the manifest set for the given image reference.
func Build(app config.AppConfig, imageRef string) *Set {
	return &Set{
		Objects: []any{
			BuildPVC(app),
			BuildService(app),
			BuildDeployment(app, imageRef),
			BuildIngressRoute(app),
		},
	}
}

// Render serializes the set as a multi-document YAML stream.
func (s *Set) Render() ([]byte, error) {
	var buf bytes.Buffer

	for i, obj := range s.Objects {
		if i > 0 {
			buf.WriteString("---\n")
		}

		data, err := sigsyaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal manifest %d: %w", i, err)
		}
		buf.Write(data)
	}

	return buf.Bytes(), nil
}
