// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.GetHead)

	if h.server.RateLimit > 0 {
		router.Use(httprate.LimitByIP(h.server.RateLimit, h.server.RateLimitWindow))
	}
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// operational endpoints
	router.Group(func(r chi.Router) {
		r.Get("/__version__", h.getServerVersion)
		r.Get("/__heartbeat__", h.heartbeat)
		r.Get("/__lbheartbeat__", h.heartbeat)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// settings application
	router.Group(func(r chi.Router) {
		r.Use(h.withCleanQuery, withGZip)
		r.Get("/", h.rootRedirect)
		r.Get("/settings", h.settingsPage)
		r.Get("/settings/*", h.settingsPage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
