// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

/*
Package resolver turns Stremio ids into playable Seedr links.

Streams classifies the incoming id:

  - IMDb ids (tt<digits>) are looked up in Cinemeta and matched against
    filenames by normalized title, and optionally by release year.
  - Any other id is opaque. A file matches when its catalog id equals the
    id, or its normalized filename equals or contains the normalized id.

Before walking the account for an opaque id, the catalog shortcut may answer
from cached link records whose meta_id equals the id.

Every candidate's link is resolved through the link cache. Errors never
escape Streams; they are reported in StreamResponse.Error with no streams.
Catalog, Files and Sync return errors directly.
*/
package resolver
