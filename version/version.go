package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info describes a build.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Dirty     bool   `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// Get returns the build information of the running binary.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(&info, bi)
	}
	return info
}

func fill(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String renders the version as version[-commit][-dirty].
func (i Info) String() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.Dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}
