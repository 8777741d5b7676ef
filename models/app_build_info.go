// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// unknownBuildValue replaces build metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo describes a running release: the name and version it is
// deployed as, and the build that produced the binary. GET /version answers
// with it.
type AppBuildInfo struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// NewAppBuildInfo builds the info of a binary from values set with -ldflags.
// Missing values read "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orUnknown := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return unknownBuildValue
		}
		return v
	}

	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// WithRelease returns a copy named name. A non-empty version replaces the
// build version, so a deployment can advertise its own release number.
func (a AppBuildInfo) WithRelease(name, version string) AppBuildInfo {
	a.Name = name
	if version != "" {
		a.Version = version
	}
	return a
}

// String renders the build lines printed by the binaries at start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}
