// Package shell executes delegated build tool commands.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/creack/pty"
	"go.trai.ch/zerr"

	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs argv in dir and waits for completion. The process runs under
// a PTY when one is available so delegated tools keep their interactive
// output; otherwise it falls back to plain pipes.
//
// The delegated tool's exit status is carried on the returned error as a
// *domain.DispatchExit.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string, stdout io.Writer) error {
	if len(argv) == 0 {
		return domain.ErrInvalidToolchain
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from the toolchain config
	cmd.Dir = dir

	ptmx, err := pty.Start(cmd)
	if err != nil {
		e.logger.Warn("no PTY available, falling back to pipes")
		return e.executePiped(ctx, argv, dir, stdout)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The PTY merges stdout and stderr into one stream.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone

	return wrapExit(waitErr)
}

// executePiped runs the command with standard pipes. Used when no PTY can be
// allocated, e.g. in containers without a devpts mount.
func (e *Executor) executePiped(ctx context.Context, argv []string, dir string, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from the toolchain config
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stdout

	return wrapExit(cmd.Run())
}

func wrapExit(err error) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &domain.DispatchExit{
		Code: exitCode,
		Err:  zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode),
	}
}
