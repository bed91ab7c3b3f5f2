// Package version reports build information for the termprofile binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	Branch    string
	BuildUser string
	BuildDate string

	Revision  = getRevision(readBuildSettings())
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

// GetVersion returns the release version, or the VCS revision for
// development builds.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// String returns a one-line description of the build.
func String() string {
	s := fmt.Sprintf("%s (%s, %s/%s)", GetVersion(), GoVersion, GoOS, GoArch)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func readBuildSettings() []debug.BuildSetting {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	return info.Settings
}

func getRevision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}

		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
