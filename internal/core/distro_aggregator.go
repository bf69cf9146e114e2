package core

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"lsb-release/internal/policies"
	"lsb-release/internal/ports"
	"lsb-release/internal/types"
)

const (
	// DebianID is the distributor ID reported when guessing.
	DebianID = "Debian"

	// DefaultTestingCodename stands in for the testing codename until a
	// "<codename>/sid" version marker names it.
	DefaultTestingCodename = "unknown.new.testing"

	// ReleaseTestingUnstable is reported for "<codename>/sid" markers.
	ReleaseTestingUnstable = "testing/unstable"
)

// overrideKeys must all be present in the override record for guessing
// to be skipped.
var overrideKeys = []string{types.KeyID, types.KeyRelease, types.KeyCodename, types.KeyDescription}

// DistroAggregator combines the version marker, the apt policy and the
// DISTRIB_* override into one distribution record. Nil ports behave as
// sources that have nothing to say.
type DistroAggregator struct {
	Marker   ports.VersionMarkerPort
	Policy   ports.PolicyReportPort
	Override ports.OverridePort
	Kernel   ports.KernelPort
	Releases ReleaseResolver
}

func NewDistroAggregator(
	marker ports.VersionMarkerPort,
	policy ports.PolicyReportPort,
	override ports.OverridePort,
	kernel ports.KernelPort,
) DistroAggregator {
	return DistroAggregator{
		Marker:   marker,
		Policy:   policy,
		Override: override,
		Kernel:   kernel,
		Releases: NewReleaseResolver(policies.DefaultReleasePolicy()),
	}
}

// guessState is the scratch space of a single resolution.
type guessState struct {
	info            types.DistroInfo
	testingCodename string
}

// Resolve returns the distribution record. Source failures only make
// the record sparser; the error is non-nil only when ctx is done.
func (a DistroAggregator) Resolve(ctx context.Context) (types.DistroInfo, error) {
	override := a.readOverride(ctx)
	if hasAllKeys(override) {
		info := types.DistroInfo{}
		for key, value := range override {
			info.Set(key, value)
		}
		return info, nil
	}

	info, err := a.Guess(ctx)
	if err != nil {
		return types.DistroInfo{}, err
	}
	info = ApplyOverride(info, override)
	assert.NotEmpty(ctx, info.ID, "distributor id must be set", assert.WithWriter(log.Logger))
	return info, nil
}

// Guess derives the record from the version marker and the apt policy
// without looking at the override.
func (a DistroAggregator) Guess(ctx context.Context) (types.DistroInfo, error) {
	state := guessState{
		info: types.DistroInfo{
			ID: DebianID,
			OS: OperatingSystem(a.kernelName()),
		},
		testingCodename: DefaultTestingCodename,
	}

	marker, found, err := a.readMarker(ctx)
	if err != nil {
		return types.DistroInfo{}, err
	}
	if found {
		state.applyMarker(marker, a.Releases.Codenames)
	}

	if state.info.Codename == "" {
		report, err := a.readPolicy(ctx)
		if err != nil {
			return types.DistroInfo{}, err
		}
		if attrs, ok := a.Releases.Resolve(ParsePolicy(report)); ok {
			state.applyPolicy(attrs, a.Releases.Codenames)
		} else {
			log.Debug().Msg("no trusted release in apt policy")
		}
	}

	state.info.Description = Describe(state.info)
	return state.info, nil
}

func (s *guessState) applyMarker(marker string, codenames CodenameTable) {
	first, _ := utf8.DecodeRuneInString(marker)
	switch {
	case !unicode.IsLetter(first):
		s.info.Release = marker
		s.info.Codename = codenames.Lookup(marker, CodenameUnknown)
	case strings.HasSuffix(marker, "/sid"):
		prefix := strings.TrimSuffix(marker, "/sid")
		if !strings.EqualFold(prefix, SuiteTesting) {
			s.testingCodename = prefix
		}
		s.info.Release = ReleaseTestingUnstable
	default:
		s.info.Release = marker
	}
}

func (s *guessState) applyPolicy(attrs types.PolicyAttributes, codenames CodenameTable) {
	release := attrs.Get(types.PolicyVersion, "")
	if policies.IsPortsPlaceholder(attrs) {
		release = ""
		attrs[types.PolicySuite] = SuiteUnstable
	}
	if release != "" {
		s.info.Release = release
		s.info.Codename = codenames.Lookup(release, CodenameUnknown)
		return
	}
	suite := attrs.Get(types.PolicySuite, SuiteUnstable)
	s.info.Release = suite
	if suite == SuiteTesting {
		s.info.Codename = s.testingCodename
	} else {
		s.info.Codename = SuiteSid
	}
	log.Debug().Str("suite", suite).Str("codename", s.info.Codename).Msg("release taken from apt policy suite")
}

// ApplyOverride merges override values over info key by key. The
// description is rebuilt unless the override sets it.
func ApplyOverride(info types.DistroInfo, override map[string]string) types.DistroInfo {
	if len(override) == 0 {
		return info
	}
	for key, value := range override {
		info.Set(key, value)
	}
	if _, ok := override[types.KeyDescription]; !ok {
		info.Description = Describe(info)
	}
	return info
}

// Describe renders "ID OS[ RELEASE][ (CODENAME)]".
func Describe(info types.DistroInfo) string {
	var b strings.Builder
	b.WriteString(info.ID)
	b.WriteString(" ")
	b.WriteString(info.OS)
	if info.Release != "" {
		b.WriteString(" ")
		b.WriteString(info.Release)
	}
	if info.Codename != "" {
		b.WriteString(" (")
		b.WriteString(info.Codename)
		b.WriteString(")")
	}
	return b.String()
}

// OperatingSystem maps a kernel name to the GNU system name.
func OperatingSystem(kernel string) string {
	switch kernel {
	case "Linux", "Hurd", "NetBSD":
		return "GNU/" + kernel
	case "FreeBSD":
		return "GNU/k" + kernel
	case "GNU/Linux", "GNU/kFreeBSD":
		return kernel
	default:
		return "GNU"
	}
}

func (a DistroAggregator) kernelName() string {
	if a.Kernel == nil {
		return ""
	}
	return a.Kernel.KernelName()
}

func (a DistroAggregator) readMarker(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if a.Marker == nil {
		return "", false, nil
	}
	content, found, err := a.Marker.ReadVersionMarker(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", "version marker").Msg("ignoring unreadable source")
		return "", false, ctx.Err()
	}
	line := firstContentLine(content)
	if !found || line == "" {
		return "", false, nil
	}
	return line, true, nil
}

func (a DistroAggregator) readPolicy(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.Policy == nil {
		return "", nil
	}
	report, err := a.Policy.PolicyReport(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", "apt policy").Msg("ignoring unreadable source")
		return "", ctx.Err()
	}
	return report, nil
}

func (a DistroAggregator) readOverride(ctx context.Context) map[string]string {
	if a.Override == nil {
		return nil
	}
	override, err := a.Override.ReadOverride(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", "lsb-release override").Msg("ignoring unreadable source")
		return nil
	}
	return override
}

func hasAllKeys(override map[string]string) bool {
	for _, key := range overrideKeys {
		if _, ok := override[key]; !ok {
			return false
		}
	}
	return true
}

func firstContentLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
