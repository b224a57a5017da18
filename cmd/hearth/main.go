package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hearth-home/hearth/internal/bootstrap"
	"github.com/hearth-home/hearth/internal/config"
	"github.com/hearth-home/hearth/internal/daemon"
	"github.com/hearth-home/hearth/internal/engine"
	"github.com/hearth-home/hearth/internal/faultlog"
	"github.com/hearth-home/hearth/internal/pidfile"
	"github.com/hearth-home/hearth/internal/runner"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

func main() {
	// The version gate runs before argument parsing and before any
	// filesystem access.
	if err := bootstrap.ValidateRuntime(); err != nil {
		fatal(err)
	}

	exitCode := 0
	root := buildRoot(&exitCode)
	if err := root.Execute(); err != nil {
		fatal(err)
	}
	os.Exit(exitCode)
}

// fatal prints the one-line diagnostic the operator needs and stops with
// status 1. Startup errors are not recoverable in-process.
func fatal(err error) {
	fmt.Printf("Fatal Error: %v\n", err)
	os.Exit(1)
}

// buildRoot creates the host command. The exit code of the supervised
// runtime is reported through exitCode rather than an error, so the restart
// sentinel reaches the outer launcher untouched.
func buildRoot(exitCode *int) *cobra.Command {
	flags := &HostFlags{}

	root := &cobra.Command{
		Use:     "hearth",
		Short:   "Hearth home automation host",
		Version: version,
		Long: fmt.Sprintf(`Hearth boots, supervises, and restart-cycles the home automation host.

If a restart is requested, the process exits with code %d; the outer
launcher is expected to relaunch it with the same arguments.`, runner.RestartExitCode),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runHost(flags)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}

	root.Flags().StringVarP(&flags.ConfigDir, "config", "c", config.DefaultConfigDir(),
		"directory that contains the hearth configuration")
	root.Flags().StringVar(&flags.PIDFile, "pid-file", "",
		"path to PID file, useful for running as daemon")
	root.Flags().StringVar(&flags.LogFile, "log-file", "",
		"log file to write to (default CONFIG/hearth.log)")
	root.Flags().IntVar(&flags.LogRotateDays, "log-rotate-days", 0,
		"enable daily log rotation and keep up to the specified days")
	root.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"enable verbose logging")
	root.Flags().BoolVar(&flags.LogNoColor, "log-no-color", false,
		"disable color logs")
	root.Flags().BoolVar(&flags.SafeMode, "safe-mode", false,
		"start in safe mode")
	root.Flags().BoolVar(&flags.Debug, "debug", false,
		"start in debug mode")
	root.Flags().BoolVar(&flags.OpenUI, "open-ui", false,
		"open the user interface after starting")
	root.Flags().BoolVar(&flags.SkipSetup, "skip-setup", false,
		"skip installation of required packages on startup")
	root.Flags().BoolVar(&flags.Daemon, "daemon", false,
		"run as daemon in the background (POSIX only)")

	return root
}

// runHost drives the boot sequence in its fixed order: config directory,
// singleton check, detach, PID write, fault scope, runtime.
func runHost(flags *HostFlags) (int, error) {
	configDir, err := filepath.Abs(flags.ConfigDir)
	if err != nil {
		return 0, fmt.Errorf("unable to resolve configuration directory %s: %w", flags.ConfigDir, err)
	}
	defaultDir, err := filepath.Abs(config.DefaultConfigDir())
	if err != nil {
		defaultDir = config.DefaultConfigDir()
	}

	if err := bootstrap.EnsureConfigPath(configDir, defaultDir); err != nil {
		return 0, err
	}

	launcher, err := config.LoadLauncher(configDir)
	if err != nil {
		return 0, err
	}
	applyLauncherDefaults(flags, launcher)

	// A debugger needs the process in the foreground, and non-POSIX hosts
	// cannot detach at all, so the daemon request is dropped rather than
	// replayed.
	runAsDaemon := flags.Daemon && daemon.Supported() && !flags.Debug

	// Check before detaching so a duplicate start fails fast and visibly;
	// write after, so the record names the detached process.
	if flags.PIDFile != "" {
		if err := pidfile.Check(flags.PIDFile); err != nil {
			return 0, fmt.Errorf("hearth is %w", err)
		}
	}
	if runAsDaemon {
		if err := daemon.Detach(); err != nil {
			return 0, err
		}
	}
	if flags.PIDFile != "" {
		if err := pidfile.Write(flags.PIDFile); err != nil {
			return 0, err
		}
	}

	cfg := runner.RuntimeConfig{
		ConfigDir:     configDir,
		Verbose:       flags.Verbose,
		LogRotateDays: flags.LogRotateDays,
		LogFile:       flags.LogFile,
		LogNoColor:    flags.LogNoColor,
		SkipSetup:     flags.SkipSetup,
		SafeMode:      flags.SafeMode,
		Debug:         flags.Debug,
		OpenUI:        flags.OpenUI,
	}

	return superviseRun(configDir, cfg)
}

// superviseRun wraps the runtime in the fault capture scope. The deferred
// close keeps the guarantee on every exit path, including a panic
// propagating out of the runtime.
func superviseRun(configDir string, cfg runner.RuntimeConfig) (code int, err error) {
	scope, err := faultlog.Open(configDir)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := scope.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return runner.Run(cfg, engine.Run), nil
}

// applyLauncherDefaults fills flag values the command line left unset from
// the launcher config file.
func applyLauncherDefaults(flags *HostFlags, lc config.Launcher) {
	if flags.PIDFile == "" {
		flags.PIDFile = lc.PIDFile
	}
	if flags.LogFile == "" {
		flags.LogFile = lc.Log.File
	}
	if flags.LogRotateDays == 0 {
		flags.LogRotateDays = lc.Log.RotateDays
	}
	if lc.Log.NoColor {
		flags.LogNoColor = true
	}
}
