// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/settings"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

var pageTemplate = template.Must(template.New("settings").Parse(`<!DOCTYPE html>
<html lang="en" dir="ltr">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <meta name="{{.MetaName}}" content="{{.Config}}">
    <title>Firefox Accounts</title>
  </head>
  <body>
    <noscript>You need to enable JavaScript to use Firefox Accounts.</noscript>
    <div id="root"></div>
  </body>
</html>
`))

type pageData struct {
	MetaName string
	Config   string
}

func renderPage(encodedConfig string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		MetaName: settings.MetaName,
		Config:   encodedConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingPage, err)
	}

	return buf.Bytes(), nil
}

// settingsPage serves the application shell for /settings and every
// client-side route below it.
func (h *Handler) settingsPage(w http.ResponseWriter, r *http.Request) {
	utils.NoCache(w)
	if _, err := utils.WriteHTML(w, h.page, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing settings page")
	}
}

// rootRedirect sends / to /settings, keeping the search string.
func (h *Handler) rootRedirect(w http.ResponseWriter, r *http.Request) {
	target := "/settings"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}
