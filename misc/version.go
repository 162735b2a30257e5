// Package misc keeps program identity: name, version and VCS revision.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X docasm/misc.version=... -X docasm/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

const appName = "docasm"

func GetAppName() string {
	return appName
}

// GetVersion returns version set at link time, falling back to module
// version recorded by the go tool.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision set at link time or embedded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
