package core

import (
	"slices"
	"strings"

	"lsb-release/internal/policies"
	"lsb-release/internal/types"
)

// ReleaseResolver picks the authoritative release among apt policy
// entries.
type ReleaseResolver struct {
	Policy    policies.ReleasePolicy
	Codenames CodenameTable
}

func NewReleaseResolver(policy policies.ReleasePolicy) ReleaseResolver {
	return ReleaseResolver{Policy: policy, Codenames: DefaultCodenames}
}

// Resolve filters entries to trusted sources, keeps the highest
// priority tier and breaks ties with Compare. It returns false when no
// trusted entry exists. entries is not modified.
func (r ReleaseResolver) Resolve(entries []types.PolicyEntry) (types.PolicyAttributes, bool) {
	var trusted []types.PolicyEntry
	for _, entry := range entries {
		if !r.Policy.Trusts(entry.Attributes) || r.Policy.Ignores(entry.Attributes) {
			continue
		}
		trusted = append(trusted, entry)
	}
	if len(trusted) == 0 {
		return nil, false
	}

	maxPriority := trusted[0].Priority
	for _, entry := range trusted[1:] {
		maxPriority = max(maxPriority, entry.Priority)
	}
	top := slices.DeleteFunc(trusted, func(entry types.PolicyEntry) bool {
		return entry.Priority != maxPriority
	})
	slices.SortStableFunc(top, func(a, b types.PolicyEntry) int {
		return r.Compare(a.Attributes, b.Attributes)
	})
	return top[0].Attributes.Clone(), true
}

// Compare orders two release lines of equal priority. When both suites
// are known release names the one further along the canonical order
// sorts first, so testing wins over stable. Unknown suites compare
// lexically and a missing suite compares equal.
func (r ReleaseResolver) Compare(a, b types.PolicyAttributes) int {
	suiteA := a.Get(types.PolicySuite, "")
	suiteB := b.Get(types.PolicySuite, "")
	if suiteA == "" || suiteB == "" {
		return 0
	}
	idxA, okA := r.Codenames.Index(suiteA)
	idxB, okB := r.Codenames.Index(suiteB)
	if okA && okB {
		return idxB - idxA
	}
	return strings.Compare(suiteA, suiteB)
}

// ResolveRelease runs the default Debian policy over entries.
func ResolveRelease(entries []types.PolicyEntry) (types.PolicyAttributes, bool) {
	return NewReleaseResolver(policies.DefaultReleasePolicy()).Resolve(entries)
}
