// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package seedr implements a client for the Seedr.cc account API.

The client authenticates with a device code obtained through the device
authorization flow (see DeviceCode), exchanges it lazily for an access token
and caches the token until Seedr rejects it. Outbound calls share one rate
limiter and one circuit breaker.

	client := seedr.NewCircuitBreakerClient(&cfg.Seedr)

	contents, err := client.ListContents(ctx, 0)
	link, err := client.FetchLink(ctx, contents.Files[0].FolderFileID)

Every call that needs a session returns config.ErrMissingDeviceCode when no
device code is configured.
*/
package seedr
