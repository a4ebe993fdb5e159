/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitybond

import (
	"runtime/debug"
)

// Release metadata of the entitybond module and the bondctl binary. GitCommit
// and BuildDate are injected with -ldflags "-X"; when they are not, the values
// recorded by the Go toolchain in the binary are used instead.
var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version of this build, falling back to the
// embedded VCS settings for fields not set at link time.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: "unknown",
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}
