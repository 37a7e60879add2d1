// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrGQLURLNotSet is returned when the merged configuration has no
	// servers.gql.url.
	ErrGQLURLNotSet = errors.New("GraphQL API URL not set")

	// ErrNoCurrentAccount is returned when storage holds no account for
	// currentAccountUid.
	ErrNoCurrentAccount = errors.New("no current account in storage")

	// ErrNoSessionToken is returned when the current account has no
	// session token.
	ErrNoSessionToken = errors.New("current account has no session token")
)
