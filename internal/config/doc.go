// Package config defines the configuration structure for the dsctl CLI.
//
// Configuration is loaded from a single YAML file (dsctl.yaml by default),
// decoded via mapstructure, defaulted, and validated. A handful of
// environment variables override file values, most notably
// INSTALL_K3S_CHANNEL which selects the k3s release channel exactly as it
// does for the upstream installer script.
package config
