// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command fxa-settings is the command-line client of the settings
// application: it bootstraps a session from the settings page, inspects web
// storage and works with settings URLs.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
