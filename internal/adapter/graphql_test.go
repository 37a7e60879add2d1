// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fxa-settings/internal/logger"
)

func newGraphQLServer(t *testing.T, handler func(w http.ResponseWriter, req graphQLRequest, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, graphQLPath, r.URL.Path)

		var req graphQLRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		handler(w, req, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGraphQLAdapter_Query(t *testing.T) {
	srv := newGraphQLServer(t, func(w http.ResponseWriter, req graphQLRequest, r *http.Request) {
		assert.Equal(t, "query { account { uid } }", req.Query)
		assert.Equal(t, "abc123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"account":{"uid":"f00"}}}`))
	})

	a, err := NewGraphQLAdapter(srv.URL, testAdapterConfig(), logger.Nop())
	require.NoError(t, err)
	a.SetToken("  abc123\n")
	assert.Equal(t, "abc123", a.Token())

	var dst struct {
		Account struct {
			UID string `json:"uid"`
		} `json:"account"`
	}
	require.NoError(t, a.Query(context.Background(), "query { account { uid } }", nil, &dst))
	assert.Equal(t, "f00", dst.Account.UID)
}

func TestGraphQLAdapter_QueryWithoutToken(t *testing.T) {
	srv := newGraphQLServer(t, func(w http.ResponseWriter, req graphQLRequest, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, map[string]any{"n": float64(1)}, req.Variables)
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	a, err := NewGraphQLAdapter(srv.URL, testAdapterConfig(), logger.Nop())
	require.NoError(t, err)

	var dst map[string]any
	require.NoError(t, a.Query(context.Background(), "query($n: Int) { x(n: $n) }", map[string]any{"n": 1}, &dst))
	assert.Nil(t, dst)
}

func TestGraphQLAdapter_GraphQLErrors(t *testing.T) {
	srv := newGraphQLServer(t, func(w http.ResponseWriter, req graphQLRequest, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"Invalid token","extensions":{"code":"UNAUTHENTICATED"}}]}`))
	})

	a, err := NewGraphQLAdapter(srv.URL, testAdapterConfig(), logger.Nop())
	require.NoError(t, err)

	err = a.Query(context.Background(), "query { account { uid } }", nil, nil)
	require.ErrorIs(t, err, ErrGraphQL)

	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.True(t, gqlErr.HasCode("UNAUTHENTICATED"))
}

func TestGraphQLAdapter_HTTPStatus(t *testing.T) {
	srv := newGraphQLServer(t, func(w http.ResponseWriter, req graphQLRequest, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
	})

	a, err := NewGraphQLAdapter(srv.URL, testAdapterConfig(), logger.Nop())
	require.NoError(t, err)

	err = a.Query(context.Background(), "query { account { uid } }", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGraphQLAdapter_MalformedResponse(t *testing.T) {
	srv := newGraphQLServer(t, func(w http.ResponseWriter, req graphQLRequest, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	a, err := NewGraphQLAdapter(srv.URL, testAdapterConfig(), logger.Nop())
	require.NoError(t, err)

	err = a.Query(context.Background(), "{ x }", nil, nil)
	assert.ErrorContains(t, err, "decode graphql response")
}

func TestNewGraphQLAdapter_EmptyURL(t *testing.T) {
	_, err := NewGraphQLAdapter("", testAdapterConfig(), logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
