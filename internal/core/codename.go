package core

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Symbolic suites appended after the numbered releases, in order.
const (
	SuiteStable   = "stable"
	SuiteTesting  = "testing"
	SuiteUnstable = "unstable"
	SuiteSid      = "sid"
)

// CodenameUnknown is reported for a numeric release that has no codename.
const CodenameUnknown = "n/a"

var symbolicSuites = []string{SuiteStable, SuiteTesting, SuiteUnstable, SuiteSid}

var (
	releasePattern  = regexp.MustCompile(`^(\d+)\.(\d+)(r(\d+))?`)
	shortReleaseKey = regexp.MustCompile(`^\d+\.\d+$`)
)

// debianCodenames is the hand-maintained major.minor -> codename table.
var debianCodenames = map[string]string{
	"1.1": "buzz",
	"1.2": "rex",
	"1.3": "bo",
	"2.0": "hamm",
	"2.1": "slink",
	"2.2": "potato",
	"3.0": "woody",
	"3.1": "sarge",
	"4.0": "etch",
	"5.0": "lenny",
	"6.0": "squeeze",
	"7.0": "wheezy",
}

// CodenameTable maps short numeric releases to codenames and fixes the
// canonical ordering of every known release name.
type CodenameTable struct {
	codenames map[string]string
	order     []string
	index     map[string]int
}

// DefaultCodenames is the Debian release table. It is built once and
// never modified.
var DefaultCodenames = mustCodenameTable(debianCodenames)

// NewCodenameTable builds a table from major.minor keys. The canonical
// order lists codenames by ascending release followed by the symbolic
// suites.
func NewCodenameTable(codenames map[string]string) (CodenameTable, error) {
	releases := make([]string, 0, len(codenames))
	cache := newVersionCache()
	for release, codename := range codenames {
		if !shortReleaseKey.MatchString(release) {
			return CodenameTable{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid short release %q", release))
		}
		if codename == "" {
			return CodenameTable{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("empty codename for release %s", release))
		}
		if _, err := cache.debVersion(release); err != nil {
			return CodenameTable{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid short release %q", release)).
				WithCause(err)
		}
		releases = append(releases, release)
	}
	slices.SortFunc(releases, cache.compare)

	table := CodenameTable{
		codenames: make(map[string]string, len(codenames)),
		order:     make([]string, 0, len(releases)+len(symbolicSuites)),
		index:     map[string]int{},
	}
	for _, release := range releases {
		table.codenames[release] = codenames[release]
		table.order = append(table.order, codenames[release])
	}
	table.order = append(table.order, symbolicSuites...)
	for i, name := range table.order {
		if _, seen := table.index[name]; !seen {
			table.index[name] = i
		}
	}
	return table, nil
}

func mustCodenameTable(codenames map[string]string) CodenameTable {
	table, err := NewCodenameTable(codenames)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup returns the codename of a numeric release such as "7.0" or
// "3.1r4". It returns unknown when the release is not numeric or its
// major.minor prefix is not in the table.
func (t CodenameTable) Lookup(release string, unknown string) string {
	m := releasePattern.FindStringSubmatch(release)
	if m == nil {
		return unknown
	}
	if codename, ok := t.codenames[m[1]+"."+m[2]]; ok {
		return codename
	}
	return unknown
}

// Order returns a copy of the canonical release ordering.
func (t CodenameTable) Order() []string {
	return slices.Clone(t.order)
}

// Index reports the position of name in the canonical ordering.
func (t CodenameTable) Index(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}
