//go:build !windows

package daemon

import (
	"fmt"
	"os"
	"syscall"
)

// Supported reports whether the host can detach into the background.
func Supported() bool { return true }

// Detach moves the current invocation into the background. In the detached
// child it returns nil immediately. Otherwise it starts the child in a new
// session with standard streams bound to the null device and exits the
// parent with status 0, so Detach never returns to the foreground caller on
// success. A start failure is returned and is fatal to startup; there is no
// retry.
func Detach() error {
	if os.Getenv(ChildEnv) == "1" {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer func() { _ = null.Close() }()

	// Flush anything buffered before the streams go away.
	_ = os.Stdout.Sync()
	_ = os.Stderr.Sync()

	attr := &os.ProcAttr{
		Env:   append(os.Environ(), ChildEnv+"=1"),
		Files: []*os.File{null, null, null},
		Sys: &syscall.SysProcAttr{
			Setsid: true,
		},
	}

	// #nosec G204
	proc, err := os.StartProcess(exe, os.Args, attr)
	if err != nil {
		return fmt.Errorf("failed to start detached process: %w", err)
	}
	_ = proc.Release()

	// Parent exits; the session-leader child carries on.
	os.Exit(0)
	return nil
}
