// Seedrio - Personal Seedr.cc Stremio Addon
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedrio

package linkcache

import (
	"fmt"

	"github.com/tomtom215/seedrio/internal/config"
)

// Policy selects how cached links expire.
type Policy int

const (
	Permanent Policy = iota
	FixedTTL
	HotPathTTL
)

func (p Policy) String() string {
	switch p {
	case Permanent:
		return config.PolicyPermanent
	case FixedTTL:
		return config.PolicyFixedTTL
	case HotPathTTL:
		return config.PolicyHotPath
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case config.PolicyPermanent:
		return Permanent, nil
	case config.PolicyFixedTTL, "":
		return FixedTTL, nil
	case config.PolicyHotPath:
		return HotPathTTL, nil
	default:
		return 0, fmt.Errorf("unknown cache policy %q", s)
	}
}

// expires reports whether records written under p carry an expiry.
func (p Policy) expires() bool {
	return p != Permanent
}
