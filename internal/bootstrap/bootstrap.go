// Package bootstrap holds the startup preconditions checked before any other
// part of the host runs: the runtime version gate and the configuration
// directory layout.
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// RequiredGoVersion is the minimum runtime version the host agrees to run on.
var RequiredGoVersion = [3]int{1, 24, 0}

// DepsDirName is the library subdirectory kept under the configuration root.
const DepsDirName = "deps"

// ValidateRuntime refuses to proceed on a runtime older than
// RequiredGoVersion. Development toolchains without a parseable version are
// let through.
func ValidateRuntime() error {
	have, ok := parseRuntimeVersion(runtime.Version())
	if !ok {
		return nil
	}
	if versionLess(have, RequiredGoVersion) {
		return fmt.Errorf("hearth requires at least Go %d.%d.%d",
			RequiredGoVersion[0], RequiredGoVersion[1], RequiredGoVersion[2])
	}
	return nil
}

// parseRuntimeVersion turns a runtime.Version() string such as "go1.24.3"
// into a version triple. Missing minor/patch components count as zero.
func parseRuntimeVersion(v string) ([3]int, bool) {
	v = strings.TrimPrefix(v, "go")
	parts := strings.SplitN(v, ".", 3)
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			if i == 0 {
				return out, false
			}
			break
		}
		out[i] = n
	}
	return out, true
}

// versionLess reports whether a orders strictly before b as a triple.
func versionLess(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// EnsureConfigPath validates the configuration root and the deps library
// directory under it, creating what is missing. The root itself is only
// auto-created when it is the default path: an explicitly chosen directory
// that does not exist is the operator's problem, not ours to invent.
// Idempotent on an already-bootstrapped directory.
func EnsureConfigPath(configDir, defaultDir string) error {
	if !isDir(configDir) {
		if configDir != defaultDir {
			return fmt.Errorf("specified configuration directory %s does not exist", configDir)
		}
		if err := os.MkdirAll(configDir, 0o750); err != nil {
			return fmt.Errorf("unable to create default configuration directory %s: %w", configDir, err)
		}
	}

	libDir := filepath.Join(configDir, DepsDirName)
	if !isDir(libDir) {
		if err := os.MkdirAll(libDir, 0o750); err != nil {
			return fmt.Errorf("unable to create library directory %s: %w", libDir, err)
		}
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
