// Package ssh provides an SSH client for executing commands on the target host.
//
// It is used by the bootstrap and deploy workflows to run the k3s installer,
// overwrite configuration files, and stream container images into the remote
// containerd. The client supports key-based authentication with configurable
// retry logic.
package ssh
