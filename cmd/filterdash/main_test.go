package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FILTERDASH_CONFIG", "")
}

func TestRunOnce(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"--once", "--range", "projected"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "16% Remaining")
	assert.Contains(t, out.String(), "42 / 50 uses")
}

func TestRunOnceInvalidReading(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"--once", "--max-uses", "0"}, &out)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, health.ErrInvalidConfiguration))
	assert.Contains(t, out.String(), "Refresh failed")
}

func TestRunInvalidTheme(t *testing.T) {
	isolate(t)

	err := run(context.Background(), []string{"--once", "--theme", "neon"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidTheme))
}

func TestRunLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "filterdash.log")

	err := run(context.Background(), []string{"--once", "--log-file", logPath, "--debug"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.FileExists(t, logPath)
}

func TestRunLogsFailureToLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "filterdash.log")

	err := run(context.Background(), []string{"--once", "--max-uses", "0", "--log-file", logPath}, &bytes.Buffer{})
	require.Error(t, err)

	content, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "filterdash stopped")
	assert.Contains(t, string(content), "error_code=invalid_configuration")
}

func TestWithSignalsCancelsOnInterrupt(t *testing.T) {
	ctx, stop := withSignals(context.Background())
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled after SIGINT")
	}
}
