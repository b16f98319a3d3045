// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package api exposes the addon over HTTP using the chi router.

Two families of routes share one router:

Stremio addon protocol (payloads are the raw protocol objects, no envelope):

	GET /manifest.json
	GET /catalog/{type}/{catalog}.json
	GET /catalog/{type}/{catalog}/{extra}.json
	GET /meta/{type}/{id}.json
	GET /stream/{type}/{id}.json

Operational routes:

	GET /                 status message
	GET /health           {status, service}
	GET /health/live      liveness probe
	GET /health/ready     readiness probe, pings the link cache store
	GET /authorize        starts the Seedr device authorization flow
	GET /auth/status      reports whether the configured device code works
	GET /debug/files      every file in the account
	GET /debug/sync       reconciles the link cache with the account
	GET /metrics          Prometheus exposition

Stream requests never fail at the HTTP level: resolution errors are reported
inside the {streams, error} body with status 200, which is what Stremio
expects. Catalog, debug and authorization failures use the models.APIResponse
envelope with 502 Bad Gateway, since the fault lies with Seedr or Cinemeta.

Ids arrive URL-escaped and may contain dots, so the {id}.json segments are
matched as a whole and the suffix is trimmed in the handler.
*/
package api
