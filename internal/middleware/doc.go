// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package middleware provides HTTP middleware shared by the addon router.

Every middleware has the standard func(http.Handler) http.Handler shape so it
can be passed straight to chi's r.Use:

  - RequestID: accepts or generates an X-Request-ID and stores it, together
    with a request scoped zerolog logger, in the request context
  - PrometheusMetrics: request count, latency and in-flight gauges labelled by
    the chi route pattern rather than the raw path
  - Compression: gzip for clients that send Accept-Encoding: gzip

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Route patterns keep metric cardinality bounded: /stream/{type}/{id} is one
series no matter how many ids Stremio asks for.
*/
package middleware
