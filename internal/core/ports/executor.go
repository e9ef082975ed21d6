package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running delegated build tool commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv (program first) in dir and waits for it to finish.
	//
	// The process inherits the caller's environment. Its combined output is
	// streamed to stdout; the delegated tool's exit code is attached to the
	// returned error when the process fails.
	Execute(ctx context.Context, argv []string, dir string, stdout io.Writer) error
}
