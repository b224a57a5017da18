package main

import (
	"path/filepath"
	"testing"

	"github.com/hearth-home/hearth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRootFlags(t *testing.T) {
	var code int
	root := buildRoot(&code)

	for _, name := range []string{
		"config", "pid-file", "log-file", "log-rotate-days", "verbose",
		"log-no-color", "safe-mode", "debug", "open-ui", "skip-setup", "daemon",
	} {
		assert.NotNil(t, root.Flags().Lookup(name), "missing flag %q", name)
	}

	cfgFlag := root.Flags().Lookup("config")
	require.NotNil(t, cfgFlag)
	assert.Equal(t, config.DefaultConfigDir(), cfgFlag.DefValue)
}

func TestApplyLauncherDefaults(t *testing.T) {
	flags := &HostFlags{}
	applyLauncherDefaults(flags, config.Launcher{
		PIDFile: "/run/hearth.pid",
		Log: config.LogSettings{
			File:       "/var/log/hearth.log",
			RotateDays: 5,
			NoColor:    true,
		},
	})

	assert.Equal(t, "/run/hearth.pid", flags.PIDFile)
	assert.Equal(t, "/var/log/hearth.log", flags.LogFile)
	assert.Equal(t, 5, flags.LogRotateDays)
	assert.True(t, flags.LogNoColor)
}

func TestApplyLauncherDefaultsFlagsWin(t *testing.T) {
	flags := &HostFlags{
		PIDFile:       "/tmp/explicit.pid",
		LogFile:       "/tmp/explicit.log",
		LogRotateDays: 3,
	}
	applyLauncherDefaults(flags, config.Launcher{
		PIDFile: "/run/hearth.pid",
		Log:     config.LogSettings{File: "/var/log/hearth.log", RotateDays: 9},
	})

	assert.Equal(t, "/tmp/explicit.pid", flags.PIDFile)
	assert.Equal(t, "/tmp/explicit.log", flags.LogFile)
	assert.Equal(t, 3, flags.LogRotateDays)
}

func TestRunHostRejectsMissingExplicitConfigDir(t *testing.T) {
	flags := &HostFlags{ConfigDir: filepath.Join(t.TempDir(), "nope")}

	_, err := runHost(flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
