package app

import (
	"lsb-release/internal/adapters"
	"lsb-release/internal/ports"
)

type Service struct {
	VersionMarker func(path string) ports.VersionMarkerPort
	Override      func(path string) ports.OverridePort
	Policy        ports.PolicyReportPort
	Provisions    ports.ProvisionsPort
	Kernel        ports.KernelPort
	Writer        ports.DistroInfoWriterPort
}

func NewService() Service {
	return Service{
		VersionMarker: func(path string) ports.VersionMarkerPort {
			return adapters.NewVersionFileAdapter(path)
		},
		Override: func(path string) ports.OverridePort {
			return adapters.NewLSBReleaseFileAdapter(path)
		},
		Policy:     adapters.NewAptPolicyAdapter(),
		Provisions: adapters.NewDpkgProvisionsAdapter(),
		Kernel:     adapters.NewKernelAdapter(),
		Writer:     adapters.NewDistroInfoWriterAdapter(),
	}
}
