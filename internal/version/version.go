/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports which build of figvars is running. Release builds
// stamp the variables below with ldflags; `go install` builds fall back to
// the module version recorded in the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Stamped by ldflags, e.g.
// -X bennypowers.dev/figvars/internal/version.Version=v1.0.0
var (
	Version   = "dev"
	GitCommit = unknown
	GitTag    = unknown
	BuildTime = unknown
	GitDirty  = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get returns the figvars version: the stamped Version, else the module
// version from build info, else a tag-commit string, else "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if v := moduleVersion(); v != "" {
		return v
	}
	if v := tagVersion(); v != "" {
		return v
	}
	return "dev"
}

func moduleVersion() string {
	info, ok := readBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return ""
	}
	return info.Main.Version
}

// tagVersion joins GitTag with a short commit unless the tag already ends
// with it, marking dirty trees.
func tagVersion() string {
	if GitTag == unknown || GitCommit == unknown {
		return ""
	}
	v := GitTag
	if short := shortCommit(GitCommit); short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

// Full returns the version with its commit, when known.
func Full() string {
	if GitCommit == unknown {
		return Get()
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
}

// Info returns build metadata keyed for JSON output.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
	}
}
