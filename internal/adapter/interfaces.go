// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fxa-settings/internal/settings"
)

// PageAdapter retrieves the settings page that carries the embedded
// client configuration.
type PageAdapter interface {
	// FetchConfigMeta downloads pageURL and returns a lookup over its
	// elements. Non-2xx responses are mapped to the package sentinels.
	FetchConfigMeta(ctx context.Context, pageURL string) (settings.MetaLookup, error)
}

// GraphQLAdapter sends queries to the GraphQL API.
type GraphQLAdapter interface {
	// SetToken stores the session token sent in the authorization header.
	SetToken(token string)
	// Token returns the current session token, or "".
	Token() string
	// Query posts {query, variables} and decodes "data" into dst.
	// A response with a non-empty "errors" array yields *GraphQLError.
	Query(ctx context.Context, query string, variables map[string]any, dst any) error
}
