package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseLSBRelease(t *testing.T) {
	content := `DISTRIB_ID=Ubuntu
DISTRIB_RELEASE=22.04

DISTRIB_CODENAME=jammy
DISTRIB_DESCRIPTION="Ubuntu 22.04.3 LTS"
DISTRIB_EMPTY=
OTHER=value
this line is ignored
`
	want := map[string]string{
		"ID":          "Ubuntu",
		"RELEASE":     "22.04",
		"CODENAME":    "jammy",
		"DESCRIPTION": "Ubuntu 22.04.3 LTS",
	}
	if diff := cmp.Diff(want, ParseLSBRelease(content)); diff != "" {
		t.Fatalf("unexpected override (-want +got):\n%s", diff)
	}
}

func TestParseLSBReleaseKeepsValuesLiteral(t *testing.T) {
	content := "DISTRIB_DESCRIPTION=\"Debian $FOO edition\"\n" +
		"DISTRIB_CODENAME='bookworm'\n" +
		"DISTRIB_RELEASE=\"12 \\\"x\\\"\"\n" +
		"DISTRIB_ID=  Debian \\n  \n"
	want := map[string]string{
		"DESCRIPTION": "Debian $FOO edition",
		"CODENAME":    "'bookworm'",
		"RELEASE":     `12 \"x\"`,
		"ID":          `Debian \n`,
	}
	if diff := cmp.Diff(want, ParseLSBRelease(content)); diff != "" {
		t.Fatalf("unexpected override (-want +got):\n%s", diff)
	}
}

func TestParseLSBReleaseSkipsInvalidKeys(t *testing.T) {
	content := "export DISTRIB_ID=Debian\n" +
		"# DISTRIB_RELEASE=7.0\n" +
		"DISTRIB CODENAME=wheezy\n" +
		"=orphan\n" +
		"DISTRIB_DESCRIPTION=\"\n" +
		"DISTRIB_CODENAME=a=b\n"
	want := map[string]string{"CODENAME": "a=b"}
	if diff := cmp.Diff(want, ParseLSBRelease(content)); diff != "" {
		t.Fatalf("unexpected override (-want +got):\n%s", diff)
	}
}

func TestLSBReleaseFileAdapterMissingFile(t *testing.T) {
	got, err := NewLSBReleaseFileAdapter(filepath.Join(t.TempDir(), "missing")).ReadOverride(t.Context())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLSBReleaseFileAdapterReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsb-release")
	require.NoError(t, os.WriteFile(path, []byte("DISTRIB_CODENAME=trixie\n"), 0644))

	got, err := NewLSBReleaseFileAdapter(path).ReadOverride(t.Context())
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]string{"CODENAME": "trixie"}, got); diff != "" {
		t.Fatalf("unexpected override (-want +got):\n%s", diff)
	}
}

func TestLSBReleaseFileAdapterUnreadable(t *testing.T) {
	_, err := NewLSBReleaseFileAdapter(t.TempDir()).ReadOverride(t.Context())
	require.Error(t, err)
}
