//go:build windows

package daemon

// Supported reports whether the host can detach into the background.
func Supported() bool { return false }

// Detach is unavailable on Windows.
func Detach() error { return ErrUnsupported }
