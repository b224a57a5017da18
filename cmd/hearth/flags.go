package main

// HostFlags holds the flags of the hearth host command. Values not set on
// the command line may be filled from the launcher config file before the
// RuntimeConfig is built.
type HostFlags struct {
	ConfigDir     string
	PIDFile       string
	LogFile       string
	LogRotateDays int
	Verbose       bool
	LogNoColor    bool
	SafeMode      bool
	Debug         bool
	OpenUI        bool
	SkipSetup     bool
	Daemon        bool
}
