// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/settings"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

const userAgent = "fxa-settings-client"

type httpPageAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPPageAdapter constructs the resty implementation of [PageAdapter].
// Requests are bounded by cfg.RequestTimeout and retried twice on network
// errors and 5xx responses.
func NewHTTPPageAdapter(cfg config.Adapter, log *logger.Logger) PageAdapter {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:    cfg.RequestTimeout,
		UserAgent:  userAgent,
		RetryCount: 2,
	})

	return &httpPageAdapter{client: client, logger: log}
}

// FetchConfigMeta implements [PageAdapter].
func (h *httpPageAdapter) FetchConfigMeta(ctx context.Context, pageURL string) (settings.MetaLookup, error) {
	target, err := normalizeBaseURL(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("fetch settings page: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Msg("settings page fetched")

	return ParseConfigMeta(bytes.NewReader(resp.Body()))
}

// normalizeBaseURL trims raw, adds an http scheme when missing and drops a
// trailing slash. The result always has a scheme and a host.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
