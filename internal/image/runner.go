package image

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner executes local commands. It is implemented by ExecRunner
// and by fakes in tests.
type CommandRunner interface {
	// Run executes name with args in dir, streaming output to the user.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands via os/exec with output passed through.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	// #nosec G204 - commands come from operator configuration, not request input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	return nil
}
