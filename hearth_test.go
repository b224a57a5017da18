package hearth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hearth-home/hearth/internal/faultlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full first-run scenario: a default config root that does not exist yet is
// created along with deps/, the runtime sees the defaults, the process would
// exit 0, and no fault log is left behind.
func TestFirstRunEndToEnd(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), ".hearth")

	require.NoError(t, EnsureConfigPath(configDir, configDir))

	info, err := os.Stat(filepath.Join(configDir, "deps"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	var seen RuntimeConfig
	cfg := RuntimeConfig{ConfigDir: configDir}
	code, err := Supervise(cfg, func(c RuntimeConfig) int {
		seen = c
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, cfg, seen)
	assert.False(t, seen.Verbose)
	assert.False(t, seen.SafeMode)
	assert.False(t, seen.Debug)

	_, err = os.Stat(filepath.Join(configDir, faultlog.FileName))
	assert.True(t, os.IsNotExist(err), "clean run must leave no fault log")
}

func TestSuperviseReturnsRestartSentinel(t *testing.T) {
	configDir := t.TempDir()

	code, err := Supervise(RuntimeConfig{ConfigDir: configDir}, func(RuntimeConfig) int {
		return RestartExitCode
	})
	require.NoError(t, err)
	assert.Equal(t, RestartExitCode, code)
}

func TestSuperviseClosesScopeOnPanic(t *testing.T) {
	configDir := t.TempDir()

	require.Panics(t, func() {
		_, _ = Supervise(RuntimeConfig{ConfigDir: configDir}, func(RuntimeConfig) int {
			panic("runtime blew up")
		})
	})

	// The deferred close ran: the empty fault log was removed.
	_, err := os.Stat(filepath.Join(configDir, faultlog.FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRelaunchStripsDaemonFlag(t *testing.T) {
	cmd := Relaunch("/usr/bin/hearth", []string{"hearth", "--daemon", "-v"})
	assert.Equal(t, []string{"hearth", "-v"}, cmd.Args)
}

func TestSingletonRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hearth.pid")

	require.NoError(t, CheckPID(path))
	require.NoError(t, WritePID(path))
	// Our own record must not read as a conflict.
	require.NoError(t, CheckPID(path))
}
