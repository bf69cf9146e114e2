package ports

import "context"

// VersionMarkerPort reads the distribution version marker
// (/etc/debian_version). The boolean is false when no marker exists.
type VersionMarkerPort interface {
	ReadVersionMarker(ctx context.Context) (string, bool, error)
}

// PolicyReportPort returns the raw text of the package manager's
// priority/policy report.
type PolicyReportPort interface {
	PolicyReport(ctx context.Context) (string, error)
}

// OverridePort returns the DISTRIB_* override record with the prefix
// already stripped and blank values dropped.
type OverridePort interface {
	ReadOverride(ctx context.Context) (map[string]string, error)
}

// KernelPort reports the running kernel name (uname -s).
type KernelPort interface {
	KernelName() string
}
