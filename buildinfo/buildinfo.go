// Package buildinfo reports the version control state a binary was built
// from, for traceability of analysis reports.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Path         string
	GoVersion    string
	Revision     string
	RevisionTime string
	Dirty        bool
}

func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = " (with uncommitted changes)"
	}

	return fmt.Sprintf("%s built with %s from commit %s at %s%s", i.Path, i.GoVersion, i.Revision, i.RevisionTime, dirty)
}

// Read collects the build information recorded in the running binary.
func Read() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Path = bi.Path
	out.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.time":
			out.RevisionTime = setting.Value
		case "vcs.modified":
			out.Dirty = setting.Value == "true"
		}
	}

	return out
}

// Banner prints the build information to stderr.
func Banner() {
	fmt.Fprintln(os.Stderr, Read())
}
