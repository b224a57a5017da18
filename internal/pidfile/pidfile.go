// Package pidfile enforces the single-instance invariant through a plain-text
// PID record. Check runs before the process detaches, Write after, so the
// recorded PID is that of the long-lived process rather than the transient
// parent. The window between Check and Write is an accepted race: a genuine
// concurrent second instance fails its own Check moments later.
package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrAlreadyRunning signals that the PID file names another live process.
var ErrAlreadyRunning = errors.New("already running")

// Check reads the PID recorded at path and reports a conflict only when a
// different, currently live process holds it. An absent or unreadable file is
// the ordinary first-run case. A record of our own PID is a leftover from the
// pre-detach parent and must not be treated as a conflict.
func Check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	line, _, _ := strings.Cut(string(data), "\n")
	pid, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		// Garbage in the file is indistinguishable from a stale record.
		return nil
	}
	if pid == os.Getpid() {
		return nil
	}
	if !pidAlive(pid) {
		return nil
	}
	return fmt.Errorf("%w: pid %d recorded in %s", ErrAlreadyRunning, pid, path)
}

// Write records the current process ID at path, replacing any previous
// content.
func Write(path string) error {
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid), 0o644); err != nil {
		return fmt.Errorf("unable to write pid file %s: %w", path, err)
	}
	return nil
}
