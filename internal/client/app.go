// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fxa-settings/internal/adapter"
	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/settings"
	"github.com/MKhiriev/fxa-settings/internal/storage"
	"github.com/MKhiriev/fxa-settings/internal/store"
	"github.com/MKhiriev/fxa-settings/internal/urlparams"
)

// GraphQLFactory builds a GraphQL adapter for servers.gql.url.
type GraphQLFactory func(gqlURL string) (adapter.GraphQLAdapter, error)

// Session is the result of a successful bootstrap.
type Session struct {
	// Config is the typed view of the merged configuration.
	Config settings.ClientConfig
	// QueryParams are the search parameters of the start URL.
	QueryParams *urlparams.Params
	// Account is the signed-in account the token belongs to.
	Account StoredAccount
	// GraphQL is authenticated with the account's session token.
	GraphQL adapter.GraphQLAdapter
}

// App is the settings client.
type App struct {
	pageURL string

	storages *store.Storages
	storage  *storage.Storage
	settings *settings.Store

	pages   adapter.PageAdapter
	graphQL GraphQLFactory

	logger *logger.Logger
}

// NewApp opens the storage backends configured in cfg and wires the
// adapters. Unavailable storage backends degrade to memory.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app := newApp(
		cfg.Adapter.PageURL,
		storage.Factory(string(storage.KindLocal), StorageGlobals(storages), log),
		settings.New(settings.Defaults(), settings.WithHardened(cfg.App.Hardened()), settings.WithLogger(log)),
		adapter.NewHTTPPageAdapter(cfg.Adapter, log),
		func(gqlURL string) (adapter.GraphQLAdapter, error) {
			return adapter.NewGraphQLAdapter(gqlURL, cfg.Adapter, log)
		},
		log,
	)
	app.storages = storages

	return app, nil
}

func newApp(pageURL string, st *storage.Storage, cs *settings.Store, pages adapter.PageAdapter, gql GraphQLFactory, log *logger.Logger) *App {
	return &App{
		pageURL:  pageURL,
		storage:  st,
		settings: cs,
		pages:    pages,
		graphQL:  gql,
		logger:   log,
	}
}

// StorageGlobals exposes the available backends of s to the storage
// wrapper. Missing backends stay nil interfaces.
func StorageGlobals(s *store.Storages) storage.Globals {
	var g storage.Globals
	if s == nil {
		return g
	}
	if s.Local != nil {
		g.LocalStorage = s.Local
	}
	if s.Session != nil {
		g.SessionStorage = s.Session
	}
	return g
}

// Storage returns the localStorage wrapper the client reads accounts from.
func (a *App) Storage() *storage.Storage {
	return a.storage
}

// Settings returns the configuration store.
func (a *App) Settings() *settings.Store {
	return a.settings
}

// Bootstrap implements [Client].
func (a *App) Bootstrap(ctx context.Context, startURL string) (*Session, error) {
	if startURL == "" {
		startURL = a.pageURL
	}
	log := a.logger.With().Str("start_url", startURL).Logger()

	lookup, err := a.pages.FetchConfigMeta(ctx, startURL)
	if err != nil {
		return nil, fmt.Errorf("fetch settings page: %w", err)
	}
	if err = a.settings.ReadConfigMeta(lookup); err != nil {
		return nil, fmt.Errorf("read config meta: %w", err)
	}

	var cfg settings.ClientConfig
	if err = a.settings.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	gqlURL := cfg.Servers.GQL.URL
	if gqlURL == "" {
		return nil, ErrGQLURLNotSet
	}

	account, err := CurrentAccount(a.storage)
	if err != nil {
		return nil, err
	}
	if account.SessionToken == "" {
		return nil, fmt.Errorf("%w: uid %s", ErrNoSessionToken, account.UID)
	}

	gql, err := a.graphQL(gqlURL)
	if err != nil {
		return nil, fmt.Errorf("create graphql adapter: %w", err)
	}
	gql.SetToken(account.SessionToken)

	log.Info().
		Str("env", cfg.Env).
		Str("gql_url", gqlURL).
		Str("storage", string(a.storage.Kind())).
		Str("uid", account.UID).
		Msg("settings client bootstrapped")

	return &Session{
		Config:      cfg,
		QueryParams: queryParams(startURL),
		Account:     account,
		GraphQL:     gql,
	}, nil
}

// queryParams returns the search parameters of startURL. A URL without a
// search string has none.
func queryParams(startURL string) *urlparams.Params {
	if !strings.Contains(startURL, urlparams.SearchPrefix) {
		return urlparams.NewParams()
	}
	return urlparams.SearchParams(startURL)
}

// Close implements [Client].
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
