package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidLSBVersions(t *testing.T) {
	tests := []struct {
		version string
		module  string
		expect  []string
	}{
		{"3.0", "core", []string{"2.0", "3.0"}},
		{"3.0", "desktop", []string{"2.0", "3.0"}},
		{"3.0", "qt4", []string{"2.0", "3.0"}},

		{"3.1", "core", []string{"2.0", "3.0", "3.1"}},
		{"3.1", "desktop", []string{"3.1"}},
		{"3.1", "qt4", []string{"3.1"}},
		{"3.1", "cxx", []string{"3.0", "3.1"}},
		{"3.1", "printing", []string{"2.0", "3.0", "3.1"}},
		{"3.1", "security", []string{"2.0", "3.0", "3.1"}},

		{"3.2", "core", []string{"2.0", "3.0", "3.1", "3.2"}},
		{"3.2", "desktop", []string{"3.1", "3.2"}},
		{"3.2", "qt4", []string{"3.1"}},
		{"3.2", "printing", []string{"3.2"}},
		{"3.2", "languages", []string{"3.2"}},
		{"3.2", "multimedia", []string{"3.2"}},
		{"3.2", "cxx", []string{"3.0", "3.1", "3.2"}},
		{"3.2", "security", []string{"2.0", "3.0", "3.1", "3.2"}},

		{"4.0", "core", []string{"2.0", "3.0", "3.1", "3.2", "4.0"}},
		{"4.0", "graphics", []string{"2.0", "3.0", "3.1", "3.2", "4.0"}},
		{"4.0", "desktop", []string{"3.1", "3.2", "4.0"}},
		{"4.0", "qt4", []string{"3.1"}},
		{"4.0", "printing", []string{"3.2", "4.0"}},
		{"4.0", "security", []string{"4.0"}},
		{"4.0", "cxx", []string{"3.0", "3.1", "3.2", "4.0"}},

		{"4.1", "core", []string{"2.0", "3.0", "3.1", "3.2", "4.0", "4.1"}},
		{"4.1", "desktop", []string{"3.1", "3.2", "4.0", "4.1"}},
		{"4.1", "qt4", []string{"3.1"}},
		{"4.1", "multimedia", []string{"3.2", "4.0", "4.1"}},
		{"4.1", "security", []string{"4.0", "4.1"}},
		{"4.1", "cxx", []string{"3.0", "3.1", "3.2", "4.0", "4.1"}},
	}
	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.module, func(t *testing.T) {
			if diff := cmp.Diff(tt.expect, ValidLSBVersions(tt.version, tt.module)); diff != "" {
				t.Fatalf("unexpected versions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidLSBVersionsUnknownRelease(t *testing.T) {
	for _, version := range []string{"2.0", "5.0", "garbage", ""} {
		t.Run(version, func(t *testing.T) {
			if diff := cmp.Diff([]string{version}, ValidLSBVersions(version, "core")); diff != "" {
				t.Fatalf("unexpected versions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidLSBVersionsReturnsFreshSlice(t *testing.T) {
	first := ValidLSBVersions("4.1", "core")
	first[0] = "mutated"
	if diff := cmp.Diff("2.0", ValidLSBVersions("4.1", "core")[0]); diff != "" {
		t.Fatalf("matrix was mutated through a result (-want +got):\n%s", diff)
	}
}

func TestCompatibilityChainFollowsDebianOrder(t *testing.T) {
	want := []string{"2.0", "3.0", "3.1", "3.2", "4.0", "4.1"}
	if diff := cmp.Diff(want, DefaultCompatibility.chain); diff != "" {
		t.Fatalf("unexpected chain (-want +got):\n%s", diff)
	}

	matrix := newCompatibilityMatrix(map[string]map[moduleCategory]compatRule{
		"10.0": {categoryOthers: {since: "9.0"}},
		"9.2":  {categoryOthers: {since: "9.0"}},
	})
	if diff := cmp.Diff([]string{"9.0", "9.2", "10.0"}, matrix.chain); diff != "" {
		t.Fatalf("unexpected chain (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"9.0", "9.2", "10.0"}, matrix.ValidVersions("10.0", "core")); diff != "" {
		t.Fatalf("unexpected versions (-want +got):\n%s", diff)
	}
}

func TestSortReleaseStrings(t *testing.T) {
	got := sortReleaseStrings([]string{"10.0", "4.1", "2.0", "4.1", "9.0"})
	if diff := cmp.Diff([]string{"2.0", "4.1", "9.0", "10.0"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
