package types

import "maps"

// PolicyAttribute names one field of an apt policy "release" line.
type PolicyAttribute string

const (
	PolicyVersion   PolicyAttribute = "version"
	PolicyOrigin    PolicyAttribute = "origin"
	PolicySuite     PolicyAttribute = "suite"
	PolicyComponent PolicyAttribute = "component"
	PolicyLabel     PolicyAttribute = "label"
)

// PolicyAttributes holds the recognised attributes of a release line.
type PolicyAttributes map[PolicyAttribute]string

// Get returns the attribute value or fallback when it is absent.
func (a PolicyAttributes) Get(key PolicyAttribute, fallback string) string {
	if value, ok := a[key]; ok {
		return value
	}
	return fallback
}

// Clone returns an independent copy of the attributes.
func (a PolicyAttributes) Clone() PolicyAttributes {
	return maps.Clone(a)
}

// PolicyEntry is one release line of an apt policy report tagged with
// the pin priority that preceded it.
type PolicyEntry struct {
	Priority   int
	Attributes PolicyAttributes
}
