package config

// Config holds the full dsctl configuration.
type Config struct {
	// Host is the deployment target reachable over SSH.
	Host HostConfig `mapstructure:"host" yaml:"host"`

	// Cluster configures the k3s installation on the host.
	Cluster ClusterConfig `mapstructure:"cluster" yaml:"cluster"`

	// Ingress configures the Traefik overlay and certificate issuance.
	Ingress IngressConfig `mapstructure:"ingress" yaml:"ingress"`

	// App configures the docserver workload.
	App AppConfig `mapstructure:"app" yaml:"app"`

	// Build configures how the docserver binary and image are produced.
	Build BuildConfig `mapstructure:"build" yaml:"build"`
}

// HostConfig identifies the single-node target host.
type HostConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
	Port    int    `mapstructure:"port" yaml:"port"` // default 22
	User    string `mapstructure:"user" yaml:"user"` // default root

	// SSHKeyPath points at the private key used for all host operations.
	// Overridable via DSCTL_SSH_KEY.
	SSHKeyPath string `mapstructure:"ssh_key_path" yaml:"ssh_key_path"`
}

// ClusterConfig configures the k3s installation.
type ClusterConfig struct {
	// Channel selects the installer release channel (stable, latest, or a
	// minor-version channel such as v1.33). Overridable via
	// INSTALL_K3S_CHANNEL. Rerunning bootstrap upgrades to the channel's
	// latest release.
	Channel string `mapstructure:"channel" yaml:"channel"`

	// Version pins an exact k3s release (e.g. v1.33.4+k3s1). When set it
	// takes precedence over Channel and must be valid semver.
	Version string `mapstructure:"version" yaml:"version"`

	// KubeconfigPath is where the fetched admin kubeconfig is written
	// locally. Default: k3s.yaml next to the config file.
	KubeconfigPath string `mapstructure:"kubeconfig_path" yaml:"kubeconfig_path"`
}

// IngressMode selects how the Traefik values overlay reaches the cluster.
type IngressMode string

const (
	// IngressModeEmbedded writes a HelmChartConfig manifest into the k3s
	// manifests directory and lets the embedded Helm controller reconcile
	// the bundled Traefik chart.
	IngressModeEmbedded IngressMode = "embedded"

	// IngressModeHelm installs the Traefik chart directly against the
	// cluster API with the same values.
	IngressModeHelm IngressMode = "helm"
)

// IngressConfig configures Traefik and ACME issuance.
type IngressConfig struct {
	// ACMEEmail is the operator contact registered with the CA.
	ACMEEmail string `mapstructure:"acme_email" yaml:"acme_email"`

	// ExposeDNS additionally binds :53 TCP and UDP entrypoints. Used when
	// the host also fronts an authoritative DNS service.
	ExposeDNS bool `mapstructure:"expose_dns" yaml:"expose_dns"`

	// Mode selects embedded (default) or helm installation.
	Mode IngressMode `mapstructure:"mode" yaml:"mode"`

	// ChartVersion pins the Traefik chart in helm mode. Empty means latest.
	ChartVersion string `mapstructure:"chart_version" yaml:"chart_version"`
}

// AppConfig configures the deployed docserver workload.
type AppConfig struct {
	Name      string `mapstructure:"name" yaml:"name"`           // default docserver
	Namespace string `mapstructure:"namespace" yaml:"namespace"` // default default

	// Domain is the public hostname routed by the IngressRoute and named
	// in the TLS certificate request.
	Domain string `mapstructure:"domain" yaml:"domain"`

	// ImageRepository is the repository part of the image reference. The
	// tag is derived from the deploy timestamp.
	ImageRepository string `mapstructure:"image_repository" yaml:"image_repository"`
}

// BuildConfig configures binary compilation and image assembly.
type BuildConfig struct {
	// SourceDir is the docserver source checkout.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// Command compiles the release binary for the static Linux target.
	// Default: cargo build --release --target x86_64-unknown-linux-musl.
	Command []string `mapstructure:"command" yaml:"command"`

	// BinaryPath is the compiled binary, relative to SourceDir.
	BinaryPath string `mapstructure:"binary_path" yaml:"binary_path"`

	// StaticDir is the static asset tree baked into the image, relative
	// to SourceDir.
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`

	// StagingDir is the local image build context. It is removed and
	// recreated from scratch on every deploy.
	StagingDir string `mapstructure:"staging_dir" yaml:"staging_dir"`

	// ContainerTool is the image build CLI (docker or podman).
	ContainerTool string `mapstructure:"container_tool" yaml:"container_tool"`

	// SkipBuild skips binary compilation and reuses the existing artifact.
	SkipBuild bool `mapstructure:"skip_build" yaml:"skip_build"`
}
