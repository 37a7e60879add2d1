// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package urlparams

import (
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// GetOrigin returns the scheme://host[:port] part of rawURL. The port is
// dropped when it is the default one for the scheme.
//
// The second result is false when rawURL is malformed, has no scheme or no
// host, or when the computed origin is not a prefix of rawURL (e.g. the input
// carries user info or needed normalization). An empty rawURL yields ("", true).
func GetOrigin(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", true
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Opaque != "" || u.Host == "" {
		return "", false
	}

	host := u.Host
	if port := u.Port(); port != "" && defaultPorts[u.Scheme] == port {
		host = strings.TrimSuffix(host, ":"+port)
	}

	origin := u.Scheme + "://" + host
	if !strings.HasPrefix(rawURL, origin) {
		return "", false
	}

	return origin, true
}

// UpdateSearchString merges newParams over the search parameters of uri and
// returns the rebuilt URI. New values win on key collision.
//
// Anything following a '#' in uri is dropped together with the old search
// string; callers relying on the fragment must re-append it.
func UpdateSearchString(uri string, newParams *Params) string {
	params := NewParams()
	if start := strings.Index(uri, SearchPrefix); start >= 0 {
		params = SearchParams(uri[start+1:])
		uri = uri[:start]
	}

	params.Merge(newParams)
	return uri + ObjToSearchString(params)
}

// CleanSearchString rebuilds uri keeping only the search parameters listed in
// allowed. With no allow-list every parameter is kept.
func CleanSearchString(uri string, allowed ...string) string {
	base, search, _ := strings.Cut(uri, SearchPrefix)
	// a second '?' belongs to neither part
	search, _, _ = strings.Cut(search, SearchPrefix)

	cleaned := SearchParams(search, allowed...)
	return base + ObjToSearchString(cleaned)
}

// SetSearchString sets a single search parameter on u in place, keeping the
// other parameters and the fragment.
func SetSearchString(u *url.URL, param, value string) {
	params := SearchParams(u.RawQuery)
	params.Set(param, value)
	u.RawQuery = strings.TrimPrefix(ObjToSearchString(params), SearchPrefix)
}
