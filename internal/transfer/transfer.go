package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// importCommand feeds stdin into the k3s-bundled containerd. The k8s.io
// namespace is where the kubelet looks up images.
const importCommand = "k3s ctr --namespace k8s.io images import -"

// Import exports the image with the local container tool and streams it
// into the remote containerd. The export process and the SSH stream run
// concurrently; failure of either side aborts the other.
func Import(ctx context.Context, comm ssh.Communicator, containerTool, ref string) error {
	// #nosec G204 - tool and ref come from operator configuration
	cmd := exec.CommandContext(ctx, containerTool, "save", ref)
	cmd.Stderr = os.Stderr

	// An io.Pipe decouples the exporter's lifetime from the stream: the
	// reader stays valid until the export has fully drained, and either
	// side can fail the other through the pipe.
	pr, pw := io.Pipe()
	cmd.Stdout = pw

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s save: %w", containerTool, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := cmd.Wait(); err != nil {
			pw.CloseWithError(err)
			return fmt.Errorf("%s save failed: %w", containerTool, err)
		}
		return pw.Close()
	})

	g.Go(func() error {
		if err := comm.ExecuteStream(gctx, importCommand, pr); err != nil {
			// Unblock the exporter if the remote side died mid-stream
			pr.CloseWithError(err)
			_ = cmd.Process.Kill()
			return fmt.Errorf("remote image import failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
