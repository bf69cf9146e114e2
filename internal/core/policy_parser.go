package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lsb-release/internal/types"
)

var priorityPattern = regexp.MustCompile(`^(-?\d+)`)

// policyKeys maps the single-letter keys of an apt "release" line to
// attribute names. Anything else on the line is ignored.
var policyKeys = map[string]types.PolicyAttribute{
	"v": types.PolicyVersion,
	"o": types.PolicyOrigin,
	"a": types.PolicySuite,
	"c": types.PolicyComponent,
	"l": types.PolicyLabel,
}

// ParsePolicy extracts the release lines of an `apt-cache policy`
// report, each tagged with the most recent priority seen above it.
func ParsePolicy(report string) []types.PolicyEntry {
	var entries []types.PolicyEntry
	priority := 0
	havePriority := false
	for _, raw := range strings.Split(report, "\n") {
		line := strings.TrimSpace(raw)
		if m := priorityPattern.FindStringSubmatch(line); m != nil {
			if value, err := strconv.Atoi(m[1]); err == nil {
				priority = value
				havePriority = true
			}
		}
		if !strings.HasPrefix(line, "release") {
			continue
		}
		_, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		attrs := ParsePolicyLine(rest)
		if len(attrs) == 0 {
			continue
		}
		if !havePriority {
			log.Debug().Str("line", line).Msg("skipping release line without a preceding priority")
			continue
		}
		entries = append(entries, types.PolicyEntry{Priority: priority, Attributes: attrs})
	}
	return entries
}

// ParsePolicyLine parses "k=v,k=v" attribute groups from a release line.
func ParsePolicyLine(data string) types.PolicyAttributes {
	attrs := types.PolicyAttributes{}
	for _, bit := range strings.Split(data, ",") {
		key, value, ok := strings.Cut(bit, "=")
		if !ok {
			continue
		}
		if name, known := policyKeys[key]; known {
			attrs[name] = value
		}
	}
	return attrs
}
