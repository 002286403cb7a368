package host

import (
	"context"
	"fmt"

	"github.com/oselz/docserver-deploy/internal/config"
	"github.com/oselz/docserver-deploy/internal/platform/ssh"
)

// RenderSysctl returns the sysctl drop-in contents: exactly the single
// unprivileged-port override line.
func RenderSysctl() []byte {
	return []byte(config.UnprivilegedPortSysctl + "\n")
}

// ApplySysctl overwrites the sysctl drop-in on the host and reloads the
// kernel parameters.
func ApplySysctl(ctx context.Context, comm ssh.Communicator) error {
	if err := comm.WriteFile(ctx, config.SysctlFilePath, RenderSysctl(), 0o644); err != nil {
		return fmt.Errorf("failed to write sysctl override: %w", err)
	}

	if _, err := comm.Execute(ctx, "sysctl --system"); err != nil {
		return fmt.Errorf("failed to reload sysctl: %w", err)
	}

	return nil
}
