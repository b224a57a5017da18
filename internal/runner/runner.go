// Package runner owns the contract between the supervisor and the host
// runtime it boots: an immutable RuntimeConfig goes in, an integer exit code
// comes out. The package interprets exactly one code specially, the restart
// sentinel, and even that only as a diagnostic trigger; relaunching is the
// outer launcher's job.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/hearth-home/hearth/internal/tasks"
)

// RestartExitCode tells the outer launcher to relaunch this process image
// with the same arguments. It sits above the POSIX-reserved low exit codes
// and the shell's 126+ range, so it cannot be mistaken for either.
const RestartExitCode = 100

// RuntimeConfig carries everything the host runtime needs to start.
// Constructed once from parsed arguments and never mutated afterward.
type RuntimeConfig struct {
	ConfigDir     string
	Verbose       bool
	LogRotateDays int
	LogFile       string
	LogNoColor    bool
	SkipSetup     bool
	SafeMode      bool
	Debug         bool
	OpenUI        bool
}

// RunFunc is the single entry point of the runtime collaborator.
type RunFunc func(RuntimeConfig) int

// Run invokes the runtime to completion and hands its exit code through
// unchanged. On the restart sentinel it first audits the task registry for
// lingering work, a diagnostic side effect that neither blocks the restart
// nor alters the code.
func Run(cfg RuntimeConfig, rt RunFunc) int {
	return run(cfg, rt, tasks.Default, os.Stderr)
}

func run(cfg RuntimeConfig, rt RunFunc, reg *tasks.Registry, diag io.Writer) int {
	code := rt(cfg)
	if code == RestartExitCode {
		auditTasks(reg, diag)
	}
	return code
}

// auditTasks counts units that are still alive and not background-class.
// The runtime deregisters its own unit before the orchestrator gets here,
// so anything non-background left in the snapshot is a leak worth a line on
// the error stream. Best-effort only: an inconsistency in the registry is
// downgraded to a secondary diagnostic, never allowed to crash the shutdown
// path.
func auditTasks(reg *tasks.Registry, diag io.Writer) {
	defer func() {
		if recover() != nil {
			_, _ = fmt.Fprintf(diag, "Failed to count lingering tasks.\n")
		}
	}()

	lingering := 0
	for _, info := range reg.Snapshot() {
		if !info.Background {
			lingering++
		}
	}
	if lingering > 0 {
		_, _ = fmt.Fprintf(diag, "Found %d lingering tasks.\n", lingering)
	}
}
