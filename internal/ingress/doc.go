// Package ingress builds the Traefik configuration overlay: ACME resolver,
// port bindings, and certificate persistence.
//
// The overlay reaches the cluster one of two ways. In embedded mode a
// HelmChartConfig manifest is written into the k3s manifests directory and
// the embedded Helm controller reconciles the bundled chart. In helm mode
// the chart is installed directly against the cluster API with the same
// values.
package ingress
