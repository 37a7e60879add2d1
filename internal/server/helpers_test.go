// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "github.com/MKhiriev/fxa-settings/models"

func handlerBuild() models.AppBuildInfo {
	return models.AppBuildInfo{Version: "1.2.3", Commit: "abc"}
}
