// Package engine is the built-in runtime collaborator behind the
// supervisor's single entry point: a RuntimeConfig in, an exit code out. It
// wires up logging from the config, registers itself with the task
// registry, and then blocks until the operating system tells it to stop or
// restart. The automation surface itself lives elsewhere; this package only
// keeps the process alive and answers signals.
package engine

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hearth-home/hearth/internal/logger"
	"github.com/hearth-home/hearth/internal/runner"
	"github.com/hearth-home/hearth/internal/tasks"
)

// Run executes the host runtime to completion. SIGINT and SIGTERM stop it
// with a clean exit; SIGHUP requests a relaunch through the restart
// sentinel.
func Run(cfg runner.RuntimeConfig) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	return run(cfg, sigCh, os.Stderr)
}

func run(cfg runner.RuntimeConfig, sigCh <-chan os.Signal, console io.Writer) int {
	logCfg := logger.Config{
		Path:       cfg.LogFile,
		RotateDays: cfg.LogRotateDays,
		NoColor:    cfg.LogNoColor,
		Verbose:    cfg.Verbose,
	}
	if logCfg.Path == "" {
		logCfg.Path = logger.DefaultPath(cfg.ConfigDir)
	}

	log := logCfg.New(console)
	if fw := logCfg.FileWriter(); fw != nil {
		defer func() { _ = fw.Close() }()
		fileLog := slog.New(slog.NewTextHandler(fw, nil))
		fileLog.Info("host starting",
			"config_dir", cfg.ConfigDir, "safe_mode", cfg.SafeMode, "debug", cfg.Debug)
	}

	task := tasks.Default.Add("engine", false)
	defer task.Done()

	log.Info("host started",
		"config_dir", cfg.ConfigDir,
		"safe_mode", cfg.SafeMode,
		"debug", cfg.Debug,
		"skip_setup", cfg.SkipSetup,
		"open_ui", cfg.OpenUI,
	)

	sig := <-sigCh
	if sig == syscall.SIGHUP {
		log.Info("restart requested", "signal", sig.String())
		return runner.RestartExitCode
	}
	log.Info("shutting down", "signal", sig.String())
	return 0
}
