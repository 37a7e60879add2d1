// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/metrics"
	"github.com/MKhiriev/fxa-settings/internal/urlparams"
)

// withCleanQuery redirects requests carrying search parameters outside
// Server.AllowedQueryParams to the same path with only the allowed ones.
// An empty allow-list disables the redirect.
func (h *Handler) withCleanQuery(next http.Handler) http.Handler {
	allowed := h.server.AllowedQueryParams

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(allowed) == 0 || r.URL.RawQuery == "" {
			next.ServeHTTP(w, r)
			return
		}

		// CleanSearchString keeps only the text between the first and the
		// second '?', so the check looks at the same part.
		search, trailing, hasTrailing := strings.Cut(r.URL.RawQuery, urlparams.SearchPrefix)
		dropped := undeclaredParams(urlparams.SplitEncodedParams(search), allowed)
		if hasTrailing {
			dropped = append(dropped, urlparams.SearchPrefix+trailing)
		}
		if len(dropped) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		target := urlparams.CleanSearchString(r.URL.RequestURI(), allowed...)
		metrics.QueryRedirectsTotal.Inc()
		logger.FromRequest(r).Debug().
			Strs("dropped", dropped).
			Str("location", target).
			Msg("redirecting to clean search string")

		http.Redirect(w, r, target, http.StatusFound)
	})
}

func undeclaredParams(p *urlparams.Params, allowed []string) []string {
	var dropped []string
	for _, key := range p.Keys() {
		if !slices.Contains(allowed, key) {
			dropped = append(dropped, key)
		}
	}
	return dropped
}
