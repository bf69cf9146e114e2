package app

import (
	"context"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lsb-release/internal/core"
	"lsb-release/internal/types"
)

// DistroInfo resolves the distribution record from the configured files
// and the apt policy.
func (s Service) DistroInfo(ctx context.Context, req DistroInfoRequest) (DistroInfoResult, error) {
	aggregator := core.NewDistroAggregator(
		s.VersionMarker(req.DebianVersionPath),
		s.Policy,
		s.Override(req.LSBReleasePath),
		s.Kernel,
	)
	info, err := aggregator.Resolve(ctx)
	if err != nil {
		return DistroInfoResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("distribution lookup interrupted").
			WithCause(err)
	}
	log.Debug().
		Str("id", info.ID).
		Str("release", info.Release).
		Str("codename", info.Codename).
		Msg("resolved distribution")
	return DistroInfoResult{Info: info}, nil
}

// InstalledModules lists the LSB modules provided by installed packages.
func (s Service) InstalledModules(ctx context.Context) (ModulesResult, error) {
	modules, err := core.NewModuleEnumerator(s.Provisions).Installed(ctx)
	if err != nil {
		return ModulesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("module lookup interrupted").
			WithCause(err)
	}
	return ModulesResult{Modules: modules}, nil
}

// Show resolves what the requested fields need and writes them out.
func (s Service) Show(ctx context.Context, req ShowRequest) error {
	if len(req.Fields) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no fields selected")
	}
	if req.Out == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output writer is required")
	}
	view := types.DistroView{
		Fields: req.Fields,
		Short:  req.Short,
		Format: req.Format,
	}
	if slices.Contains(req.Fields, types.FieldModules) {
		modules, err := s.InstalledModules(ctx)
		if err != nil {
			return err
		}
		view.Modules = modules.Modules
	}
	if slices.ContainsFunc(req.Fields, func(field types.DistroField) bool {
		return field != types.FieldModules
	}) {
		result, err := s.DistroInfo(ctx, req.DistroInfoRequest)
		if err != nil {
			return err
		}
		view.Info = result.Info
	}
	return s.Writer.WriteDistroInfo(req.Out, view)
}
