package app

import (
	"io"

	"lsb-release/internal/types"
)

type DistroInfoRequest struct {
	DebianVersionPath string
	LSBReleasePath    string
}

type DistroInfoResult struct {
	Info types.DistroInfo
}

type ModulesResult struct {
	Modules []string
}

type ShowRequest struct {
	DistroInfoRequest
	Fields []types.DistroField
	Short  bool
	Format types.OutputFormat
	Out    io.Writer
}
