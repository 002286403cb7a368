package ssh

import (
	"context"
	"io"
	"os"
)

// Communicator defines the interface for interacting with the target host.
// It is implemented by Client and by fakes in handler tests.
type Communicator interface {
	// Execute runs a command on the remote host and returns its output.
	Execute(ctx context.Context, command string) (string, error)
	// ExecuteStream runs a command with stdin fed from the given reader.
	ExecuteStream(ctx context.Context, command string, stdin io.Reader) error
	// WriteFile overwrites a file on the remote host.
	WriteFile(ctx context.Context, remotePath string, data []byte, mode os.FileMode) error
	// FetchFile reads a file from the remote host.
	FetchFile(ctx context.Context, remotePath string) ([]byte, error)
}

var _ Communicator = (*Client)(nil)
