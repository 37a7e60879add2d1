// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

const sourceRepo = "https://github.com/MKhiriev/fxa-settings"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.NoCache(w)
	if _, err := utils.WriteJSON(w, h.build, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

// heartbeat answers both health endpoints. The page server has no
// dependencies to check, so being able to answer is the whole check.
func (h *Handler) heartbeat(w http.ResponseWriter, r *http.Request) {
	utils.NoCache(w)
	if _, err := utils.WriteJSON(w, struct{}{}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing heartbeat")
	}
}
