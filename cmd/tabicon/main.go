package main

import (
	"runtime"

	"github.com/bnema/tabicon/internal/cli/cmd"
	"github.com/bnema/tabicon/internal/domain/build"
	"github.com/bnema/tabicon/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	defer logging.RecoverPanic(logging.NewFromConfigValues("error", "console"))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
