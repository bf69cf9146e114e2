package policies

import (
	"slices"

	"lsb-release/internal/types"
)

// Debian archive identifiers trusted by default.
const (
	DebianOrigin      = "Debian"
	DebianLabel       = "Debian"
	DebianComponent   = "main"
	DebianPortsOrigin = "Debian Ports"
	DebianPortsLabel  = "ftp.debian-ports.org"
)

// ReleasePolicy decides which apt sources may speak for the installed
// release. A source is trusted when its origin, component and label all
// match, or when its origin is an alias whose configured label matches.
type ReleasePolicy struct {
	Origin        string
	Component     string
	Label         string
	IgnoredSuites []string
	OriginAliases map[string]string
}

func DefaultReleasePolicy() ReleasePolicy {
	return ReleasePolicy{
		Origin:        DebianOrigin,
		Component:     DebianComponent,
		Label:         DebianLabel,
		IgnoredSuites: []string{"experimental"},
		OriginAliases: map[string]string{DebianPortsOrigin: DebianPortsLabel},
	}
}

// Trusts reports whether a release line comes from a trusted source.
func (p ReleasePolicy) Trusts(attrs types.PolicyAttributes) bool {
	origin := attrs.Get(types.PolicyOrigin, "")
	label := attrs.Get(types.PolicyLabel, "")
	if origin == p.Origin &&
		attrs.Get(types.PolicyComponent, "") == p.Component &&
		label == p.Label {
		return true
	}
	aliasLabel, ok := p.OriginAliases[origin]
	return ok && label == aliasLabel
}

// Ignores reports whether the entry's suite is excluded from consideration.
func (p ReleasePolicy) Ignores(attrs types.PolicyAttributes) bool {
	suite, ok := attrs[types.PolicySuite]
	return ok && slices.Contains(p.IgnoredSuites, suite)
}

// IsPortsPlaceholder reports whether attrs describe the Debian Ports
// archive, whose Release file always carries version 1.0.
func IsPortsPlaceholder(attrs types.PolicyAttributes) bool {
	return attrs.Get(types.PolicyVersion, "") == "1.0" &&
		attrs.Get(types.PolicyOrigin, "") == DebianPortsOrigin &&
		attrs.Get(types.PolicyLabel, "") == DebianPortsLabel
}
