// Package daemon provides the detach-to-background capability. Go has no
// fork primitive, so detachment is done the way the surrounding ecosystem
// does it: re-exec the same binary in a new session with stdio on the null
// device, then the foreground parent exits. The child is marked through the
// environment so it never tries to detach again. POSIX only; requesting it
// elsewhere is an error.
package daemon

import "errors"

// ChildEnv marks the detached child so a relaunch of Detach is a no-op.
const ChildEnv = "_HEARTH_DAEMONIZED"

// ErrUnsupported is returned where the platform cannot detach.
var ErrUnsupported = errors.New("running as a daemon is not supported on this platform")
