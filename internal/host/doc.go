// Package host implements the cluster bootstrap operations on the target
// host: the kernel sysctl override, the k3s server configuration, the
// installer invocation, and kubeconfig retrieval.
//
// Every generated file is rendered from configuration and written wholesale;
// rerunning bootstrap always converges the host to the rendered state.
package host
