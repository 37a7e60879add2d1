// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration file. The same keys
// are used for JSON and YAML.
type fileConfig struct {
	App struct {
		Env     string `json:"env" yaml:"env"`
		Version string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		RateLimit          int      `json:"rate_limit" yaml:"rate_limit"`
		RateLimitWindow    Duration `json:"rate_limit_window" yaml:"rate_limit_window"`
		AllowedQueryParams []string `json:"allowed_query_params" yaml:"allowed_query_params"`
	} `json:"server,omitempty" yaml:"server"`

	Settings struct {
		AuthServerURL                string  `json:"auth_server_url" yaml:"auth_server_url"`
		ContentServerURL             string  `json:"content_server_url" yaml:"content_server_url"`
		GQLServerURL                 string  `json:"gql_server_url" yaml:"gql_server_url"`
		OAuthServerURL               string  `json:"oauth_server_url" yaml:"oauth_server_url"`
		ProfileServerURL             string  `json:"profile_server_url" yaml:"profile_server_url"`
		OAuthClientID                string  `json:"oauth_client_id" yaml:"oauth_client_id"`
		ScopedKeysEnabled            bool    `json:"scoped_keys_enabled" yaml:"scoped_keys_enabled"`
		SentryDSN                    string  `json:"sentry_dsn" yaml:"sentry_dsn"`
		SentryEnv                    string  `json:"sentry_env" yaml:"sentry_env"`
		SentrySampleRate             float64 `json:"sentry_sample_rate" yaml:"sentry_sample_rate"`
		MarketingEmailPreferencesURL string  `json:"marketing_email_preferences_url" yaml:"marketing_email_preferences_url"`
		L10nStrict                   bool    `json:"l10n_strict" yaml:"l10n_strict"`
	} `json:"settings,omitempty" yaml:"settings"`

	Storage struct {
		Local struct {
			DSN       string   `json:"dsn" yaml:"dsn"`
			Namespace string   `json:"namespace" yaml:"namespace"`
			OpTimeout Duration `json:"op_timeout" yaml:"op_timeout"`
		} `json:"local,omitempty" yaml:"local"`

		Session struct {
			RedisAddr     string   `json:"redis_addr" yaml:"redis_addr"`
			RedisPassword string   `json:"redis_password" yaml:"redis_password"`
			RedisDB       int      `json:"redis_db" yaml:"redis_db"`
			KeyPrefix     string   `json:"key_prefix" yaml:"key_prefix"`
			TTL           Duration `json:"ttl" yaml:"ttl"`
			OpTimeout     Duration `json:"op_timeout" yaml:"op_timeout"`
		} `json:"session,omitempty" yaml:"session"`
	} `json:"storage,omitempty" yaml:"storage"`

	Logging struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"logging,omitempty" yaml:"logging"`

	Adapter struct {
		PageURL        string   `json:"page_url" yaml:"page_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:     fc.App.Env,
			Version: fc.App.Version,
		},
		Server: Server{
			HTTPAddress:        fc.Server.HTTPAddress,
			RequestTimeout:     time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(fc.Server.ShutdownTimeout),
			RateLimit:          fc.Server.RateLimit,
			RateLimitWindow:    time.Duration(fc.Server.RateLimitWindow),
			AllowedQueryParams: fc.Server.AllowedQueryParams,
		},
		Settings: Settings{
			AuthServerURL:                fc.Settings.AuthServerURL,
			ContentServerURL:             fc.Settings.ContentServerURL,
			GQLServerURL:                 fc.Settings.GQLServerURL,
			OAuthServerURL:               fc.Settings.OAuthServerURL,
			ProfileServerURL:             fc.Settings.ProfileServerURL,
			OAuthClientID:                fc.Settings.OAuthClientID,
			ScopedKeysEnabled:            fc.Settings.ScopedKeysEnabled,
			SentryDSN:                    fc.Settings.SentryDSN,
			SentryEnv:                    fc.Settings.SentryEnv,
			SentrySampleRate:             fc.Settings.SentrySampleRate,
			MarketingEmailPreferencesURL: fc.Settings.MarketingEmailPreferencesURL,
			L10nStrict:                   fc.Settings.L10nStrict,
		},
		Storage: Storage{
			Local: LocalStorage{
				DSN:       fc.Storage.Local.DSN,
				Namespace: fc.Storage.Local.Namespace,
				OpTimeout: time.Duration(fc.Storage.Local.OpTimeout),
			},
			Session: SessionStorage{
				RedisAddr:     fc.Storage.Session.RedisAddr,
				RedisPassword: fc.Storage.Session.RedisPassword,
				RedisDB:       fc.Storage.Session.RedisDB,
				KeyPrefix:     fc.Storage.Session.KeyPrefix,
				TTL:           time.Duration(fc.Storage.Session.TTL),
				OpTimeout:     time.Duration(fc.Storage.Session.OpTimeout),
			},
		},
		Logging: Logging{
			Level:  fc.Logging.Level,
			Format: fc.Logging.Format,
		},
		Adapter: Adapter{
			PageURL:        fc.Adapter.PageURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
