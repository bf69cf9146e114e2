package core

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"lsb-release/internal/ports"
	"lsb-release/internal/types"
)

// LSBPackages are the compliance packages whose provisions are checked.
var LSBPackages = []string{
	"lsb-core",
	"lsb-cxx",
	"lsb-graphics",
	"lsb-desktop",
	"lsb-languages",
	"lsb-multimedia",
	"lsb-printing",
	"lsb-security",
}

var provisionPattern = regexp.MustCompile(`lsb-(?P<module>[a-z0-9]+)-(?P<arch>[^ ]+)(?: \(= (?P<version>[0-9.]+)\))?`)

// ModuleEnumerator lists the LSB modules satisfied by installed packages.
type ModuleEnumerator struct {
	Provisions ports.ProvisionsPort
	Matrix     CompatibilityMatrix
}

func NewModuleEnumerator(provisions ports.ProvisionsPort) ModuleEnumerator {
	return ModuleEnumerator{Provisions: provisions, Matrix: DefaultCompatibility}
}

// Installed queries the provisions source and expands the result. An
// unreadable source yields no modules.
func (e ModuleEnumerator) Installed(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.Provisions == nil {
		return nil, nil
	}
	report, err := e.Provisions.Provisions(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", "package provisions").Msg("ignoring unreadable source")
		return nil, ctx.Err()
	}
	return e.Enumerate(report), nil
}

// Enumerate turns "<version> <provides>" lines into sorted, unique
// <module>-<version>-<arch> identifiers.
func (e ModuleEnumerator) Enumerate(report string) []string {
	seen := map[string]struct{}{}
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimRight(line, "\r")
		version, provides, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		version = UpstreamLSBVersion(version)
		for _, provision := range ParseProvisions(provides) {
			if provision.Version != "" {
				seen[provision.Identifier()] = struct{}{}
				continue
			}
			for _, valid := range e.Matrix.ValidVersions(version, provision.Module) {
				provision.Version = valid
				seen[provision.Identifier()] = struct{}{}
			}
		}
	}
	modules := make([]string, 0, len(seen))
	for module := range seen {
		modules = append(modules, module)
	}
	slices.Sort(modules)
	return modules
}

// EnumerateModules runs Enumerate with the default matrix.
func EnumerateModules(report string) []string {
	return ModuleEnumerator{Matrix: DefaultCompatibility}.Enumerate(report)
}

// ParseProvisions extracts the lsb module provisions from a
// comma-separated Provides field.
func ParseProvisions(provides string) []types.ModuleProvision {
	var out []types.ModuleProvision
	for _, item := range strings.Split(provides, ",") {
		m := provisionPattern.FindStringSubmatch(item)
		if m == nil {
			continue
		}
		out = append(out, types.ModuleProvision{
			Module:  m[provisionPattern.SubexpIndex("module")],
			Arch:    m[provisionPattern.SubexpIndex("arch")],
			Version: m[provisionPattern.SubexpIndex("version")],
		})
	}
	return out
}

// UpstreamLSBVersion drops the packaging suffix of a Debian version
// (3.2-1, 3.2+deb1, 3.2~rc1 all give 3.2).
func UpstreamLSBVersion(version string) string {
	if idx := strings.IndexAny(version, "-+~"); idx >= 0 {
		return version[:idx]
	}
	return version
}
