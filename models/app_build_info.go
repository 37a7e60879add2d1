// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds data types shared by the settings server and client.
package models

// AppBuildInfo carries build-time metadata of a binary.
//
// Values are injected by linker flags during CI/CD and reported by the
// server's /__version__ endpoint and the client's --version output.
type AppBuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date,omitempty"`
	// Source is the repository the binary was built from.
	Source string `json:"source"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

// String formats the build info for version output.
func (a AppBuildInfo) String() string {
	return a.Version + " (commit " + a.Commit + ", built " + a.Date + ")"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
