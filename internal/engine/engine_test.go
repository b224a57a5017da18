package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/hearth-home/hearth/internal/logger"
	"github.com/hearth-home/hearth/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithSignal(t *testing.T, cfg runner.RuntimeConfig, sig os.Signal) (int, string) {
	t.Helper()
	sigCh := make(chan os.Signal, 1)
	sigCh <- sig
	var console bytes.Buffer
	code := run(cfg, sigCh, &console)
	return code, console.String()
}

func TestTerminationExitsClean(t *testing.T) {
	cfg := runner.RuntimeConfig{ConfigDir: t.TempDir(), LogNoColor: true}

	code, out := runWithSignal(t, cfg, syscall.SIGTERM)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "shutting down")
}

func TestHangupRequestsRestart(t *testing.T) {
	cfg := runner.RuntimeConfig{ConfigDir: t.TempDir(), LogNoColor: true}

	code, out := runWithSignal(t, cfg, syscall.SIGHUP)

	assert.Equal(t, runner.RestartExitCode, code)
	assert.Contains(t, out, "restart requested")
}

func TestStartupWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := runner.RuntimeConfig{ConfigDir: dir, LogNoColor: true}

	runWithSignal(t, cfg, syscall.SIGTERM)

	data, err := os.ReadFile(logger.DefaultPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "host starting")
}

func TestExplicitLogFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "custom.log")
	cfg := runner.RuntimeConfig{ConfigDir: dir, LogFile: logPath, LogNoColor: true}

	runWithSignal(t, cfg, syscall.SIGTERM)

	_, err := os.Stat(logPath)
	require.NoError(t, err)
	_, err = os.Stat(logger.DefaultPath(dir))
	assert.True(t, os.IsNotExist(err))
}
