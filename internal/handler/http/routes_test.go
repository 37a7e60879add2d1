// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/models"
)

func serve(t *testing.T, h *Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestRoutes_TableTest(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		method         string
		target         string
		wantStatus     int
		wantLocation   string
		wantBodyPrefix string
	}{
		{name: "settings page", method: http.MethodGet, target: "/settings", wantStatus: http.StatusOK, wantBodyPrefix: "<!DOCTYPE html>"},
		{name: "client-side route", method: http.MethodGet, target: "/settings/avatar", wantStatus: http.StatusOK, wantBodyPrefix: "<!DOCTYPE html>"},
		{name: "allowed params served", method: http.MethodGet, target: "/settings?uid=abc&context=web", wantStatus: http.StatusOK},
		{name: "undeclared params redirected", method: http.MethodGet, target: "/settings?uid=abc&evil=1", wantStatus: http.StatusFound, wantLocation: "/settings?uid=abc"},
		{name: "only undeclared params", method: http.MethodGet, target: "/settings/emails?x=1&y=2", wantStatus: http.StatusFound, wantLocation: "/settings/emails"},
		{name: "root redirects", method: http.MethodGet, target: "/?uid=abc", wantStatus: http.StatusFound, wantLocation: "/settings?uid=abc"},
		{name: "lbheartbeat", method: http.MethodGet, target: "/__lbheartbeat__", wantStatus: http.StatusOK, wantBodyPrefix: "{}"},
		{name: "heartbeat", method: http.MethodGet, target: "/__heartbeat__", wantStatus: http.StatusOK, wantBodyPrefix: "{}"},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantStatus: http.StatusOK},
		{name: "head settings", method: http.MethodHead, target: "/settings", wantStatus: http.StatusOK},
		{name: "post settings hidden", method: http.MethodPost, target: "/settings", wantStatus: http.StatusNotFound},
		{name: "delete wildcard hidden", method: http.MethodDelete, target: "/settings/avatar", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, tt.method, tt.target, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBodyPrefix != "" {
				assert.True(t, strings.HasPrefix(rec.Body.String(), tt.wantBodyPrefix), "body %q", rec.Body.String())
			}
		})
	}
}

func TestRoutes_Version(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/__version__", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.AppBuildInfo{Version: "1.2.3", Commit: "abc123", Source: sourceRepo}, got)
}

func TestRoutes_EmptyAllowListDisablesRedirect(t *testing.T) {
	h := newTestHandler(t, func(c *config.StructuredConfig) {
		c.Server.AllowedQueryParams = nil
	})

	rec := serve(t, h, http.MethodGet, "/settings?anything=goes", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_RateLimit(t *testing.T) {
	h := newTestHandler(t, func(c *config.StructuredConfig) {
		c.Server.RateLimit = 2
		c.Server.RateLimitWindow = time.Minute
	})
	router := h.Init()

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/__lbheartbeat__", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRoutes_TraceIDEchoed(t *testing.T) {
	h := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/__lbheartbeat__", nil)
	assert.Equal(t, testTraceID, rec.Header().Get(traceIDHeader))
}
