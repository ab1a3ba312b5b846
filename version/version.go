// Package version exposes build metadata injected by the linker.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at release build time; the zero values identify a
// from-source dev build.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info is the full build description.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo collects the injected values plus runtime facts.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns the compact "version (commit)" form used in log lines.
func (i Info) Short() string {
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}

// String returns the multi-line form printed by the version command.
func (i Info) String() string {
	return fmt.Sprintf(
		"catalogd %s\n  commit:     %s\n  built:      %s\n  go version: %s\n  platform:   %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform,
	)
}
