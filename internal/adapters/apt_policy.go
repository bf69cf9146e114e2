package adapters

import (
	"context"

	"lsb-release/internal/ports"
)

// AptPolicyAdapter runs `apt-cache policy` to obtain the pin priorities
// of every configured source.
type AptPolicyAdapter struct {
	Binary string
	run    commandRunner
}

func NewAptPolicyAdapter() AptPolicyAdapter {
	return AptPolicyAdapter{Binary: "apt-cache", run: runCommand}
}

func (a AptPolicyAdapter) PolicyReport(ctx context.Context) (string, error) {
	output, err := a.run(ctx, []string{"LANG=C", "LC_ALL=C"}, a.Binary, "policy")
	if err != nil {
		return "", err
	}
	return string(output), nil
}

var _ ports.PolicyReportPort = AptPolicyAdapter{}
