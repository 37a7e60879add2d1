// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// RetryCount retries failed requests (network errors and 5xx responses).
	RetryCount int
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 10 * time.Second})
//	resp, err := client.R().Get("https://accounts.firefox.com/settings")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(100 * time.Millisecond).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= 500
			})
	}

	return &HTTPClient{Client: client}
}
