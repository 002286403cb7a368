// Package transfer moves container images to the target host over SSH.
//
// The exported tarball is piped from the local container tool straight into
// the remote containerd import, so no registry is involved and the image
// never touches disk in between.
package transfer
