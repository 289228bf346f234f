// Package buildinfo exposes the version stamped into the binary.
//
// Release builds inject the values via ldflags:
//
//	go build -ldflags "-X github.com/avelys/rolodex-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When a value was not injected, Get falls back to what the module
// build info embedded by the toolchain provides.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information, preferring ldflags values and
// falling back to the embedded VCS metadata.
func Get() Info {
	commit, buildTime := Commit, BuildTime
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" && s.Value != "" {
					commit = s.Value
				}
			case "vcs.time":
				if buildTime == "unknown" && s.Value != "" {
					buildTime = s.Value
				}
			}
		}
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String returns a single-line version summary.
func String() string {
	return fmt.Sprintf("%s (%s) built at %s", Version, Commit, BuildTime)
}
