// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Runtime environments. Every environment except EnvDevelopment is hardened:
// a missing or invalid embedded client configuration is fatal there.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvStage       = "stage"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// fxa-settings server and client. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON or YAML
// file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds the runtime environment and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout and request filtering settings of the
	// settings page server.
	Server Server `envPrefix:"SERVER_"`

	// Settings holds the values embedded in the settings page for the client.
	Settings Settings `envPrefix:"SETTINGS_"`

	// Storage holds configuration for the web storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logging selects the log level and output format.
	Logging Logging `envPrefix:"LOG_"`

	// Adapter holds the outbound HTTP settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is one of development, test, stage or production.
	// Env: APP_ENV
	Env string `env:"ENV" envDefault:"production"`

	// Version is the semantic version string of the running application.
	// Exposed via /__version__ and embedded in the client configuration.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Hardened reports whether the application runs in a hardened environment.
func (a App) Hardened() bool {
	return a.Env != EnvDevelopment
}

// Server holds network and request handling settings of the page server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3030").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:3030"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// RateLimit is the number of requests a single IP may issue per
	// RateLimitWindow. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT" envDefault:"600"`

	// RateLimitWindow is the sliding window of RateLimit.
	// Env: SERVER_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	// AllowedQueryParams lists the search parameters the settings pages
	// accept. Requests carrying other parameters are redirected to the
	// cleaned URL. Empty disables the redirect.
	// Env: SERVER_ALLOWED_QUERY_PARAMS (comma separated)
	AllowedQueryParams []string `env:"ALLOWED_QUERY_PARAMS" envSeparator:"," envDefault:"context,entrypoint,service,uid,email,flow_id,flow_begin_time,device_id,utm_campaign,utm_content,utm_medium,utm_source,utm_term"`
}

// Settings holds the client configuration the server embeds in the page.
type Settings struct {
	// Env: SETTINGS_AUTH_SERVER_URL
	AuthServerURL string `env:"AUTH_SERVER_URL" envDefault:"http://localhost:9000"`
	// Env: SETTINGS_CONTENT_SERVER_URL
	ContentServerURL string `env:"CONTENT_SERVER_URL" envDefault:"http://localhost:3030"`
	// Env: SETTINGS_GQL_SERVER_URL
	GQLServerURL string `env:"GQL_SERVER_URL" envDefault:"http://localhost:8290"`
	// Env: SETTINGS_OAUTH_SERVER_URL
	OAuthServerURL string `env:"OAUTH_SERVER_URL" envDefault:"http://localhost:9000"`
	// Env: SETTINGS_PROFILE_SERVER_URL
	ProfileServerURL string `env:"PROFILE_SERVER_URL" envDefault:"http://localhost:1111"`

	// Env: SETTINGS_OAUTH_CLIENT_ID
	OAuthClientID string `env:"OAUTH_CLIENT_ID"`
	// Env: SETTINGS_SCOPED_KEYS_ENABLED
	ScopedKeysEnabled bool `env:"SCOPED_KEYS_ENABLED"`

	// Env: SETTINGS_SENTRY_DSN
	SentryDSN string `env:"SENTRY_DSN"`
	// Env: SETTINGS_SENTRY_ENV
	SentryEnv string `env:"SENTRY_ENV" envDefault:"local"`
	// Env: SETTINGS_SENTRY_SAMPLE_RATE
	SentrySampleRate float64 `env:"SENTRY_SAMPLE_RATE" envDefault:"1.0"`

	// Env: SETTINGS_MARKETING_EMAIL_PREFERENCES_URL
	MarketingEmailPreferencesURL string `env:"MARKETING_EMAIL_PREFERENCES_URL"`
	// Env: SETTINGS_L10N_STRICT
	L10nStrict bool `env:"L10N_STRICT"`
}

// Storage groups the configuration of the web storage backends.
type Storage struct {
	// Local is the persistent backend behind "localStorage".
	Local LocalStorage `envPrefix:"LOCAL_"`

	// Session is the per-session backend behind "sessionStorage".
	Session SessionStorage `envPrefix:"SESSION_"`
}

// LocalStorage configures the persistent SQL backend.
type LocalStorage struct {
	// DSN is either a SQLite file path or a postgres:// URI.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN" envDefault:"fxa-settings.db"`

	// Namespace isolates the rows of one application in a shared database.
	// Env: STORAGE_LOCAL_NAMESPACE
	Namespace string `env:"NAMESPACE" envDefault:"fxa-settings"`

	// OpTimeout bounds every single storage operation.
	// Env: STORAGE_LOCAL_OP_TIMEOUT
	OpTimeout time.Duration `env:"OP_TIMEOUT" envDefault:"3s"`
}

// SessionStorage configures the Redis backend. An empty RedisAddr leaves
// session storage unavailable.
type SessionStorage struct {
	// Env: STORAGE_SESSION_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
	// Env: STORAGE_SESSION_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_SESSION_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// KeyPrefix is prepended to every key, before the session id.
	// Env: STORAGE_SESSION_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"fxa-settings:session:"`
	// TTL is the lifetime of a session's keys, refreshed on every write.
	// Env: STORAGE_SESSION_TTL
	TTL time.Duration `env:"TTL" envDefault:"24h"`
	// OpTimeout bounds every single storage operation.
	// Env: STORAGE_SESSION_OP_TIMEOUT
	OpTimeout time.Duration `env:"OP_TIMEOUT" envDefault:"2s"`
}

// Logging holds logger settings.
type Logging struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is "heka" (JSON) or "pretty".
	// Env: LOG_FORMAT
	Format string `env:"FORMAT" envDefault:"heka"`
}

// Adapter holds outbound HTTP settings of the client.
type Adapter struct {
	// PageURL is the settings page the client bootstraps from.
	// Env: ADAPTER_PAGE_URL
	PageURL string `env:"PAGE_URL" envDefault:"http://localhost:3030/settings"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// GetServerConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
