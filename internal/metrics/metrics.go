// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus metrics for the settings server and
// the client-side configuration and storage layers.
//
// Label values are bounded (route patterns, backend names, fixed reasons);
// no user or request identifiers are used as labels.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts served requests by route pattern, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxa_settings_http_requests_total",
		Help: "Total number of HTTP requests, by route, method and status code.",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fxa_settings_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// QueryRedirectsTotal counts redirects issued to strip undeclared search parameters.
	QueryRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fxa_settings_query_redirects_total",
		Help: "Total number of redirects that removed undeclared search parameters.",
	})

	// StorageProbeFailuresTotal counts failed storage probes by namespace and errno.
	StorageProbeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxa_settings_storage_probe_failures_total",
		Help: "Total number of failed storage backend probes, by namespace and errno.",
	}, []string{"namespace", "errno"})

	// StorageBackendSelected counts storage wrappers built, by requested and resolved kind.
	StorageBackendSelected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxa_settings_storage_backend_selected_total",
		Help: "Total number of storage wrappers created, by requested and resolved backend.",
	}, []string{"requested", "resolved"})

	// ConfigDecodeFailuresTotal counts rejected embedded configuration payloads.
	ConfigDecodeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxa_settings_config_decode_failures_total",
		Help: "Total number of embedded configuration payloads that could not be used, by reason and mode.",
	}, []string{"reason", "mode"})
)

// Config decode failure reasons.
const (
	ReasonEmpty   = "empty"
	ReasonInvalid = "invalid"
)

// Config decode modes.
const (
	ModeHardened = "hardened"
	ModeLenient  = "lenient"
)
