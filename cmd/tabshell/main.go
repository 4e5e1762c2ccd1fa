package main

import (
	"os"
	"runtime"

	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli/cmd"
	"github.com/bnema/tabshell/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	bootstrap.EnableCrashForensics()

	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	// Run GUI mode for browse command
	if len(os.Args) > 1 && os.Args[1] == "browse" {
		opts := bootstrap.GUIOptions{Build: info}
		if len(os.Args) > 2 {
			opts.InitialURL = os.Args[2]
		}
		os.Exit(bootstrap.RunGUI(opts))
	}

	cmd.SetBuildInfo(info)

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}
