// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of wordle. It must not import
// other wordle packages.
package version

import "runtime/debug"

// Version is the module version from the build info, or "dev".
var Version = fromBuildInfo(debug.ReadBuildInfo())

// Revision is the short VCS revision the binary was built from, if known.
var Revision = revision(debug.ReadBuildInfo())

// String returns the version, with the revision appended when known.
func String() string {
	if Revision == "" {
		return Version
	}
	return Version + " (" + Revision + ")"
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) string {
	if ok && info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func revision(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 7 {
				return s.Value[:7]
			}
			return s.Value
		}
	}
	return ""
}
