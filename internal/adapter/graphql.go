// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

const (
	graphQLPath = "/graphql"
	// authHeader is the header the GraphQL API reads the session token from.
	authHeader = "authorization"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []GraphQLErrorEntry `json:"errors"`
}

type graphQLAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGraphQLAdapter constructs the resty implementation of [GraphQLAdapter].
// gqlURL is the value of servers.gql.url; requests go to gqlURL + "/graphql".
//
// Returns an error if gqlURL is empty or cannot be parsed as a URL.
func NewGraphQLAdapter(gqlURL string, cfg config.Adapter, log *logger.Logger) (GraphQLAdapter, error) {
	baseURL, err := normalizeBaseURL(gqlURL)
	if err != nil {
		return nil, fmt.Errorf("invalid graphql url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: userAgent,
	})

	return &graphQLAdapter{client: client, logger: log}, nil
}

// SetToken implements [GraphQLAdapter]. The token is whitespace-trimmed.
func (g *graphQLAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// Token implements [GraphQLAdapter].
func (g *graphQLAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Query implements [GraphQLAdapter]. dst may be nil when the caller only
// cares about errors.
func (g *graphQLAdapter) Query(ctx context.Context, query string, variables map[string]any, dst any) error {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphQLRequest{Query: query, Variables: variables})
	if token := g.Token(); token != "" {
		req.SetHeader(authHeader, token)
	}

	resp, err := req.Post(graphQLPath)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var gr graphQLResponse
	if err = json.Unmarshal(resp.Body(), &gr); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}
	if len(gr.Errors) > 0 {
		g.logger.Warn().
			Int("errors", len(gr.Errors)).
			Str("first", gr.Errors[0].Message).
			Msg("graphql query returned errors")
		return &GraphQLError{Errors: gr.Errors}
	}

	if dst == nil || len(gr.Data) == 0 || string(gr.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(gr.Data, dst); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}
