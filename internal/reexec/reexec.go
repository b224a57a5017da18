// Package reexec rebuilds the command line a supervising launcher needs to
// relaunch the current instance identically after a restart-sentinel exit.
// It only constructs; executing the result is the launcher's business.
package reexec

import (
	"path/filepath"
	"strings"
)

// DaemonFlag is stripped from the rebuilt arguments: whether the relaunch
// detaches again is the relauncher's own decision, not something to replay
// blindly.
const DaemonFlag = "--daemon"

// SearchPathEnv points a relaunch at the root of the install tree so
// support files resolve identically regardless of the working directory at
// relaunch time.
const SearchPathEnv = "HEARTH_PATH"

// Command is a relaunch recipe: argv tokens ready for a process-exec
// primitive, plus any environment entries the relaunch depends on.
type Command struct {
	Args []string
	Env  []string
}

// Rebuild collects the path and arguments needed to re-execute the current
// instance. exe is the resolved executable image; argv is the original
// vector. An invocation through an explicit path into an install tree is
// rewritten onto the resolved executable, with SearchPathEnv set one level
// above the entry's directory. A bare-name invocation (PATH lookup) is kept
// as-is. In both cases the daemon flag is dropped. An empty vector falls
// back to the resolved executable alone.
func Rebuild(exe string, argv []string) Command {
	if len(argv) == 0 {
		return Command{Args: []string{exe}}
	}
	args := stripDaemonFlag(argv[1:])

	if strings.ContainsRune(argv[0], filepath.Separator) {
		entryDir := filepath.Dir(argv[0])
		return Command{
			Args: append([]string{exe}, args...),
			Env:  []string{SearchPathEnv + "=" + filepath.Dir(entryDir)},
		}
	}
	return Command{Args: append([]string{argv[0]}, args...)}
}

func stripDaemonFlag(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == DaemonFlag {
			continue
		}
		out = append(out, arg)
	}
	return out
}
