package core

import (
	"slices"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed Debian versions so sorting a list parses
// each value once.
type versionCache struct {
	deb map[string]debversion.Version
}

func newVersionCache() *versionCache {
	return &versionCache{deb: map[string]debversion.Version{}}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// compare orders a and b by Debian version rules. Values that do not
// parse are compared lexically.
func (c *versionCache) compare(a string, b string) int {
	v1, errA := c.debVersion(a)
	v2, errB := c.debVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return v1.Compare(v2)
}

// sortReleaseStrings orders release numbers ascending and drops
// duplicates.
func sortReleaseStrings(values []string) []string {
	cache := newVersionCache()
	out := slices.Clone(values)
	slices.SortStableFunc(out, cache.compare)
	return slices.Compact(out)
}
