// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/settings"
	"github.com/MKhiriev/fxa-settings/internal/urlparams"
)

const sentryServerName = "fxa-settings-server"

// ClientConfig builds the configuration handed to the settings application
// from the server's own configuration.
func ClientConfig(app config.App, s config.Settings) settings.ClientConfig {
	cc := settings.DefaultClientConfig()

	cc.Env = app.Env
	cc.Version = app.Version
	cc.MarketingEmailPreferencesURL = s.MarketingEmailPreferencesURL
	cc.L10n.Strict = s.L10nStrict
	cc.OAuth = settings.OAuth{
		ClientID:          s.OAuthClientID,
		ScopedKeysEnabled: s.ScopedKeysEnabled,
	}
	cc.Sentry.DSN = s.SentryDSN
	cc.Sentry.Env = s.SentryEnv
	cc.Sentry.SampleRate = s.SentrySampleRate
	cc.Sentry.ServerName = sentryServerName
	cc.Servers = settings.Servers{
		Auth:    settings.ServerURL{URL: s.AuthServerURL},
		Content: settings.ServerURL{URL: s.ContentServerURL},
		GQL:     settings.ServerURL{URL: s.GQLServerURL},
		OAuth:   settings.ServerURL{URL: s.OAuthServerURL},
		Profile: settings.ServerURL{URL: s.ProfileServerURL},
	}

	return cc
}

// EncodeClientConfig serializes cc to JSON and URI-encodes it, producing
// the value of the meta element's content attribute.
func EncodeClientConfig(cc settings.ClientConfig) (string, error) {
	raw, err := json.Marshal(cc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingClientConfig, err)
	}

	return urlparams.EncodeURIComponent(string(raw)), nil
}
