package core

import (
	"slices"
)

// moduleCategory groups LSB modules that share a compatibility rule.
type moduleCategory string

const (
	categoryOthers   moduleCategory = "others"
	categoryDesktop  moduleCategory = "desktop"
	categoryQt4      moduleCategory = "qt4"
	categoryExtended moduleCategory = "printing-languages-multimedia"
	categorySecurity moduleCategory = "security"
	categoryCxx      moduleCategory = "cxx"
)

var moduleCategories = map[string]moduleCategory{
	"desktop":    categoryDesktop,
	"qt4":        categoryQt4,
	"printing":   categoryExtended,
	"languages":  categoryExtended,
	"multimedia": categoryExtended,
	"security":   categorySecurity,
	"cxx":        categoryCxx,
}

// compatRule says where a module's chain of valid versions starts. A
// pinned rule yields only the start version regardless of the release.
type compatRule struct {
	since  string
	pinned bool
}

// lsbCompatRules is keyed by LSB release. A category missing from a row
// uses that row's "others" rule.
var lsbCompatRules = map[string]map[moduleCategory]compatRule{
	"3.0": {
		categoryOthers: {since: "2.0"},
	},
	"3.1": {
		categoryOthers:  {since: "2.0"},
		categoryDesktop: {since: "3.1"},
		categoryQt4:     {since: "3.1", pinned: true},
		categoryCxx:     {since: "3.0"},
	},
	"3.2": {
		categoryOthers:   {since: "2.0"},
		categoryDesktop:  {since: "3.1"},
		categoryQt4:      {since: "3.1", pinned: true},
		categoryExtended: {since: "3.2"},
		categoryCxx:      {since: "3.0"},
	},
	"4.0": {
		categoryOthers:   {since: "2.0"},
		categoryDesktop:  {since: "3.1"},
		categoryQt4:      {since: "3.1", pinned: true},
		categoryExtended: {since: "3.2"},
		categorySecurity: {since: "4.0"},
		categoryCxx:      {since: "3.0"},
	},
	"4.1": {
		categoryOthers:   {since: "2.0"},
		categoryDesktop:  {since: "3.1"},
		categoryQt4:      {since: "3.1", pinned: true},
		categoryExtended: {since: "3.2"},
		categorySecurity: {since: "4.0"},
		categoryCxx:      {since: "3.0"},
	},
}

// CompatibilityMatrix answers which LSB releases an installed module
// satisfies.
type CompatibilityMatrix struct {
	chain []string
	rules map[string]map[moduleCategory]compatRule
}

// DefaultCompatibility is the LSB 2.0 through 4.1 matrix.
var DefaultCompatibility = newCompatibilityMatrix(lsbCompatRules)

// newCompatibilityMatrix derives the release chain from every LSB
// release the rules mention, either as a row or as a starting point.
func newCompatibilityMatrix(rules map[string]map[moduleCategory]compatRule) CompatibilityMatrix {
	var releases []string
	for release, row := range rules {
		releases = append(releases, release)
		for _, rule := range row {
			releases = append(releases, rule.since)
		}
	}
	return CompatibilityMatrix{
		chain: sortReleaseStrings(releases),
		rules: rules,
	}
}

// ValidVersions returns, in ascending order, every LSB release under
// which module is satisfied by a package built for lsbVersion. Unknown
// LSB releases only validate themselves.
func (m CompatibilityMatrix) ValidVersions(lsbVersion string, module string) []string {
	row, ok := m.rules[lsbVersion]
	if !ok {
		return []string{lsbVersion}
	}
	rule, ok := row[categoryOf(module)]
	if !ok {
		rule = row[categoryOthers]
	}
	if rule.pinned {
		return []string{rule.since}
	}
	start := slices.Index(m.chain, rule.since)
	end := slices.Index(m.chain, lsbVersion)
	if start < 0 || end < 0 || start > end {
		return []string{lsbVersion}
	}
	return slices.Clone(m.chain[start : end+1])
}

// ValidLSBVersions is ValidVersions on the default matrix.
func ValidLSBVersions(lsbVersion string, module string) []string {
	return DefaultCompatibility.ValidVersions(lsbVersion, module)
}

func categoryOf(module string) moduleCategory {
	if category, ok := moduleCategories[module]; ok {
		return category
	}
	return categoryOthers
}
