// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the outbound HTTP side of the settings client.
//
// [PageAdapter] fetches the settings page and exposes its elements as a
// [settings.MetaLookup], so the embedded configuration can be read with
// [settings.Store.ReadConfigMeta]. [GraphQLAdapter] talks to the GraphQL API
// named by servers.gql.url, authenticating with the session token.
//
// Both are built on resty through [utils.HTTPClient]. Non-2xx responses are
// mapped to the sentinel errors declared in errors.go.
package adapter
