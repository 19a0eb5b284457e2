// Package version provides build version information for startup log
// records.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/nbs-nodejs/nucleo-logger-console/version.Version=1.0.0"
//
// When ldflags are absent the values fall back to the module build info
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns version information, preferring ldflags values and falling
// back to runtime/debug build info.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = buildInfo.GoVersion
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}

	return info
}

// String returns a short version string like "1.0.0-abc1234".
func (i Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s = fmt.Sprintf("%s-%s", s, i.GitCommit)
	}
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}

// Fields returns the version information as a metadata map suitable for a
// startup log record.
func (i Info) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"version": i.Version,
	}
	if i.GitCommit != "" {
		fields["git_commit"] = i.GitCommit
	}
	if i.BuildTime != "" {
		fields["build_time"] = i.BuildTime
	}
	if i.GoVersion != "" {
		fields["go_version"] = i.GoVersion
	}
	return fields
}
