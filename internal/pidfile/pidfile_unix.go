//go:build !windows

package pidfile

import (
	"errors"
	"syscall"
)

// pidAlive returns true if a process with given pid exists (or EPERM, which
// still proves the PID is taken).
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
