// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "encoding/json"

// ServerURL points at one of the account services.
type ServerURL struct {
	URL string `json:"url"`
}

// Servers lists the services the settings application talks to.
type Servers struct {
	Auth    ServerURL `json:"auth"`
	Content ServerURL `json:"content"`
	GQL     ServerURL `json:"gql"`
	OAuth   ServerURL `json:"oauth"`
	Profile ServerURL `json:"profile"`
}

// Sentry holds error reporting settings handed to the client.
type Sentry struct {
	DSN        string  `json:"dsn"`
	Env        string  `json:"env"`
	SampleRate float64 `json:"sampleRate"`
	ServerName string  `json:"serverName"`
	URL        string  `json:"url"`
}

// OAuth holds the client's OAuth settings.
type OAuth struct {
	ClientID          string `json:"clientId"`
	ScopedKeysEnabled bool   `json:"scopedKeysEnabled"`
}

// L10n holds localization settings.
type L10n struct {
	Strict bool `json:"strict"`
}

// ClientConfig is the typed shape of the configuration consumed by the
// settings application. The settings server embeds it in the page and the
// client reads it back with [Store.Unmarshal].
type ClientConfig struct {
	Env                          string  `json:"env"`
	Version                      string  `json:"version,omitempty"`
	MarketingEmailPreferencesURL string  `json:"marketingEmailPreferencesUrl"`
	L10n                         L10n    `json:"l10n"`
	OAuth                        OAuth   `json:"oauth"`
	Sentry                       Sentry  `json:"sentry"`
	Servers                      Servers `json:"servers"`
}

// DefaultClientConfig returns the compiled-in client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Env: "development",
		Sentry: Sentry{
			Env:        "local",
			SampleRate: 1.0,
			ServerName: "fxa-settings-client",
			URL:        "https://sentry.prod.mozaws.net",
		},
		Servers: Servers{
			Auth:    ServerURL{URL: "http://localhost:9000"},
			Content: ServerURL{URL: "http://localhost:3030"},
			GQL:     ServerURL{URL: "http://localhost:8290"},
			OAuth:   ServerURL{URL: "http://localhost:9000"},
			Profile: ServerURL{URL: "http://localhost:1111"},
		},
	}
}

// Defaults returns [DefaultClientConfig] in the untyped form the [Store]
// works on.
func Defaults() map[string]any {
	m, err := ToMap(DefaultClientConfig())
	if err != nil {
		// ClientConfig only has JSON-safe fields
		panic(err)
	}
	return m
}

// ToMap converts a JSON-serializable value to its generic object form.
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
