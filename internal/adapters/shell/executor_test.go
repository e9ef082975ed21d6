//go:build !windows

package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alertcord/alertcord/internal/adapters/shell"
	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports/mocks"
)

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return shell.NewExecutor(log)
}

func TestExecutor_Execute_Success(t *testing.T) {
	e := newExecutor(t)
	var buf bytes.Buffer

	err := e.Execute(context.Background(), []string{"sh", "-c", "echo delegated"}, t.TempDir(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "delegated")
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	e := newExecutor(t)
	var buf bytes.Buffer

	err := e.Execute(context.Background(), []string{"sh", "-c", "exit 3"}, t.TempDir(), &buf)
	require.Error(t, err)

	var exit *domain.DispatchExit
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 3, exit.Code)
}

func TestExecutor_Execute_EmptyArgv(t *testing.T) {
	e := newExecutor(t)

	err := e.Execute(context.Background(), nil, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidToolchain.Error())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	e := newExecutor(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), domain.FilePerm))
	var buf bytes.Buffer

	err := e.Execute(context.Background(), []string{"ls"}, dir, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "marker.txt")
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	e := newExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- e.Execute(ctx, []string{"sleep", "30"}, t.TempDir(), &bytes.Buffer{})
	}()

	// Give the process a moment to start, then cancel.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Execute did not return after context cancellation")
	}
}
