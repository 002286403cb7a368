package config

// Remote paths written or read on the target host. Every file is rewritten
// wholesale on each run; there are no merge semantics.
const (
	// SysctlFilePath is the drop-in that relaxes the privileged-port
	// restriction so Traefik can bind :80/:443/:53 without capabilities.
	SysctlFilePath = "/etc/sysctl.d/90-unprivileged-ports.conf"

	// K3sConfigPath is the k3s server configuration file.
	K3sConfigPath = "/etc/rancher/k3s/config.yaml"

	// TraefikOverlayPath is where k3s picks up HelmChartConfig manifests
	// that overlay the bundled Traefik chart values.
	TraefikOverlayPath = "/var/lib/rancher/k3s/server/manifests/traefik-config.yaml"

	// RemoteKubeconfigPath is the admin kubeconfig k3s writes on install.
	RemoteKubeconfigPath = "/etc/rancher/k3s/k3s.yaml"
)

// Sysctl override contents.
const (
	// UnprivilegedPortSysctl lets unprivileged processes bind all ports.
	UnprivilegedPortSysctl = "net.ipv4.ip_unprivileged_port_start=0"
)

// k3s installer settings.
const (
	// K3sInstallerURL is the upstream installer script endpoint.
	K3sInstallerURL = "https://get.k3s.io"

	// K3sChannelEnvVar selects the release channel for the installer.
	K3sChannelEnvVar = "INSTALL_K3S_CHANNEL"

	// DefaultK3sChannel tracks the latest stable k3s release.
	DefaultK3sChannel = "stable"
)

// ACME / TLS issuance.
const (
	// ACMEDirectoryURL is the production Let's Encrypt directory endpoint.
	ACMEDirectoryURL = "https://acme-v02.api.letsencrypt.org/directory"

	// ACMEResolverName is the certresolver referenced by IngressRoutes.
	ACMEResolverName = "letsencrypt"
)

// Persistent volume settings shared by the ACME store and the app data dir.
const (
	// VolumeSize is the capacity requested for both persistent volumes.
	VolumeSize = "128Mi"

	// StorageClass is the k3s bundled local-path provisioner.
	StorageClass = "local-path"
)

// docserver container contract.
const (
	// ContainerPort is the port the docserver binary listens on.
	ContainerPort = 3000

	// EnvStaticPath names the env var for the baked-in static assets path.
	EnvStaticPath = "DOCSERVER_STATIC_PATH"

	// EnvCratesPath names the env var for the package documentation data path.
	EnvCratesPath = "DOCSERVER_CRATES_PATH"

	// WebrootStaticPath is where the image carries static assets.
	WebrootStaticPath = "/webroot/static"

	// WebrootCratesPath is where the data volume is mounted.
	WebrootCratesPath = "/webroot/crates"
)

// SSHKeyEnvVar overrides the configured SSH private key path.
const SSHKeyEnvVar = "DSCTL_SSH_KEY"
