// Package hearth exposes the supervision core for embedding: the pieces
// that boot, daemonize, and restart-cycle the automation host. The runtime
// being supervised is reached through one seam -- a RuntimeConfig in, an
// exit code out.
package hearth

import (
	"github.com/hearth-home/hearth/internal/bootstrap"
	"github.com/hearth-home/hearth/internal/config"
	"github.com/hearth-home/hearth/internal/faultlog"
	"github.com/hearth-home/hearth/internal/pidfile"
	"github.com/hearth-home/hearth/internal/reexec"
	"github.com/hearth-home/hearth/internal/runner"
)

// Re-export core types for external consumers. These are aliases, so
// conversions are zero-cost.

type RuntimeConfig = runner.RuntimeConfig

type RunFunc = runner.RunFunc

// RelaunchCommand is the recipe an outer launcher follows after a
// restart-sentinel exit.
type RelaunchCommand = reexec.Command

// RestartExitCode is the distinguished exit code meaning "terminated
// intentionally, please relaunch with the same arguments".
const RestartExitCode = runner.RestartExitCode

// ErrAlreadyRunning reports a live instance holding the PID file.
var ErrAlreadyRunning = pidfile.ErrAlreadyRunning

// DefaultConfigDir returns the default configuration root.
func DefaultConfigDir() string { return config.DefaultConfigDir() }

// EnsureConfigPath bootstraps the configuration root and its library
// directory under the default-vs-explicit creation policy.
func EnsureConfigPath(configDir, defaultDir string) error {
	return bootstrap.EnsureConfigPath(configDir, defaultDir)
}

// CheckPID aborts a duplicate start; WritePID records the current process.
func CheckPID(path string) error { return pidfile.Check(path) }
func WritePID(path string) error { return pidfile.Write(path) }

// Supervise runs the runtime collaborator inside a fault capture scope and
// returns its exit code. The fault log is removed afterward when no fault
// was recorded.
func Supervise(cfg RuntimeConfig, rt RunFunc) (int, error) {
	scope, err := faultlog.Open(cfg.ConfigDir)
	if err != nil {
		return 0, err
	}
	defer func() { _ = scope.Close() }()

	return runner.Run(cfg, rt), nil
}

// Relaunch rebuilds the command line needed to re-execute the instance.
func Relaunch(exe string, argv []string) RelaunchCommand {
	return reexec.Rebuild(exe, argv)
}
