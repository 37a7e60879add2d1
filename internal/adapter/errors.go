// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrEmptyAddress is returned when an adapter is built without a URL.
	ErrEmptyAddress = errors.New("empty address")

	// ErrGraphQL matches every [*GraphQLError] with errors.Is.
	ErrGraphQL = errors.New("graphql error")
)

// GraphQLErrorEntry is one element of the "errors" array of a GraphQL
// response.
type GraphQLErrorEntry struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code, if the server set one.
func (e GraphQLErrorEntry) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// GraphQLError is returned by [GraphQLAdapter.Query] when the response
// carries a non-empty "errors" array.
type GraphQLError struct {
	Errors []GraphQLErrorEntry
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		if code := entry.Code(); code != "" {
			msgs = append(msgs, code+": "+entry.Message)
			continue
		}
		msgs = append(msgs, entry.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

func (e *GraphQLError) Is(target error) bool {
	return target == ErrGraphQL
}

// HasCode reports whether any entry carries extensions.code == code.
func (e *GraphQLError) HasCode(code string) bool {
	for _, entry := range e.Errors {
		if entry.Code() == code {
			return true
		}
	}
	return false
}
