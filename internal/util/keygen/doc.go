// Package keygen generates ed25519 SSH key pairs.
//
// Keys are produced in OpenSSH PEM format (private) and authorized_keys
// format (public), matching what the deployment target host accepts.
package keygen
