package adapters

import (
	"context"

	"lsb-release/internal/core"
	"lsb-release/internal/ports"
)

const dpkgProvisionsFormat = "${Version} ${Provides}\n"

// DpkgProvisionsAdapter asks dpkg which LSB compliance packages are
// installed and what they provide.
type DpkgProvisionsAdapter struct {
	Binary   string
	Packages []string
	run      commandRunner
}

func NewDpkgProvisionsAdapter() DpkgProvisionsAdapter {
	return DpkgProvisionsAdapter{
		Binary:   "dpkg-query",
		Packages: core.LSBPackages,
		run:      runCommand,
	}
}

func (a DpkgProvisionsAdapter) Provisions(ctx context.Context) (string, error) {
	args := append([]string{"-f", dpkgProvisionsFormat, "-W"}, a.Packages...)
	output, err := a.run(ctx, nil, a.Binary, args...)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

var _ ports.ProvisionsPort = DpkgProvisionsAdapter{}
