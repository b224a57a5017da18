// Package faultlog captures crash diagnostics that bypass normal error
// propagation. A Scope holds an append-mode file under the configuration
// root and routes the runtime's fatal crash output into it for the duration
// of one run. A run without faults leaves nothing behind: Close deletes the
// file when it stayed empty.
package faultlog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
)

// FileName is the fixed fault-log name under the configuration directory.
const FileName = "hearth.log.fault"

// Scope is an open fault-capture window. It must be closed on every exit
// path of the run it wraps.
type Scope struct {
	file *os.File
	path string
}

// Open creates the fault log in configDir and enables the crash trap. The
// trap only records; it never alters control flow.
func Open(configDir string) (*Scope, error) {
	path := filepath.Join(configDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("unable to open fault log %s: %w", path, err)
	}
	// SetCrashOutput duplicates the descriptor, so the scope's own handle
	// stays independently closable.
	if err := debug.SetCrashOutput(f, debug.CrashOptions{}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("unable to enable fault capture on %s: %w", path, err)
	}
	return &Scope{file: f, path: path}, nil
}

// Path returns the fault log location.
func (s *Scope) Path() string { return s.path }

// File exposes the open handle so callers can append their own diagnostics.
func (s *Scope) File() *os.File { return s.file }

// Close disables the crash trap, releases the file, and removes it if no
// fault was recorded. Kept idempotent through the nil-file guard so deferred
// and explicit closes can coexist.
func (s *Scope) Close() error {
	if s.file == nil {
		return nil
	}
	_ = debug.SetCrashOutput(nil, debug.CrashOptions{})

	info, statErr := s.file.Stat()
	err := s.file.Close()
	s.file = nil

	if statErr == nil && info.Size() == 0 {
		_ = os.Remove(s.path)
	}
	return err
}
