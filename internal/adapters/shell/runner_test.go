package shell_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tfroot/internal/adapters/shell"
	"go.trai.ch/tfroot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewRunner(mockLogger)
}

func TestRunner_CapturesOutput(t *testing.T) {
	runner := newRunner(t)

	res, err := runner.Run(context.Background(), "sh", "-c", "echo line1; echo line2; echo oops >&2")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.Equal(t, 0, res.ExitCode)
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	runner := newRunner(t)

	res, err := runner.Run(context.Background(), "sh", "-c", "echo nope >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "nope\n", res.Stderr)
}

func TestRunner_ExecutableNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunnerWithEnv(mockLogger, []string{"PATH=" + t.TempDir()})

	_, err := runner.Run(context.Background(), "tf", "workfold")
	require.Error(t, err)
	assert.ErrorContains(t, err, "executable not found")
}

func TestRunner_Cancelled(t *testing.T) {
	runner := newRunner(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.ErrorContains(t, err, "command interrupted")
}

func TestLookPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "tf")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o600))

	got, err := shell.LookPath("tf", []string{"HOME=/x", "PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = shell.LookPath("plain", []string{"PATH=" + dir})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = shell.LookPath("tf", []string{"HOME=/x"})
	assert.ErrorIs(t, err, exec.ErrNotFound)
}
