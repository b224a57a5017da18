// Package config resolves the configuration root and loads the optional
// launcher settings file. Launcher settings cover only what the supervisor
// itself needs before the runtime starts; everything past that seam belongs
// to the runtime's own configuration, which this package does not touch.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDirName is the configuration root under the user's home directory.
const DefaultDirName = ".hearth"

// LauncherFileName is the optional TOML settings file inside the
// configuration root.
const LauncherFileName = "hearth.toml"

// DefaultConfigDir returns the default configuration root, computable
// without any arguments. Used to decide whether a missing directory may be
// auto-created.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No resolvable home: fall back to a root-relative default so the
		// caller still gets a distinguishable path.
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// LogSettings are the launcher-level logging defaults under [log].
type LogSettings struct {
	File       string `toml:"file" mapstructure:"file"`
	RotateDays int    `toml:"rotate_days" mapstructure:"rotate_days"`
	NoColor    bool   `toml:"no_color" mapstructure:"no_color"`
}

// Launcher is the top-level TOML structure of hearth.toml. Command-line
// flags override all of it.
type Launcher struct {
	PIDFile string      `toml:"pid_file" mapstructure:"pid_file"`
	Log     LogSettings `toml:"log" mapstructure:"log"`
}

// LoadLauncher reads hearth.toml from the configuration root. A missing
// file is the common case and yields the zero value; a malformed file is an
// error.
func LoadLauncher(configDir string) (Launcher, error) {
	path := filepath.Join(configDir, LauncherFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Launcher{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Launcher{}, fmt.Errorf("unable to read launcher config %s: %w", path, err)
	}
	var lc Launcher
	if err := v.Unmarshal(&lc); err != nil {
		return Launcher{}, fmt.Errorf("unable to parse launcher config %s: %w", path, err)
	}
	return lc, nil
}
