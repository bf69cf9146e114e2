package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsb-release/internal/app"
	"lsb-release/internal/types"
)

type stubPolicy string

func (s stubPolicy) PolicyReport(context.Context) (string, error) { return string(s), nil }

type stubProvisions string

func (s stubProvisions) Provisions(context.Context) (string, error) { return string(s), nil }

type stubKernel string

func (s stubKernel) KernelName() string { return string(s) }

func useStubService(t *testing.T, policy string, provisions string) {
	t.Helper()
	previous := newAppService
	newAppService = func() app.Service {
		service := app.NewService()
		service.Policy = stubPolicy(policy)
		service.Provisions = stubProvisions(provisions)
		service.Kernel = stubKernel("Linux")
		return service
	}
	t.Cleanup(func() { newAppService = previous })
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func writeMarker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debian_version")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"show", "modules"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "debian-version-file", "lsb-release-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestShowCommandFlags(t *testing.T) {
	cmd := newShowCommand(&RootConfig{})
	shorthands := map[string]string{
		"id":          "i",
		"description": "d",
		"release":     "r",
		"codename":    "c",
		"all":         "a",
		"short":       "s",
	}
	for name, short := range shorthands {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "missing flag: %s", name)
		assert.Equal(t, short, flag.Shorthand)
	}
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func TestModulesCommandFlags(t *testing.T) {
	cmd := newModulesCommand()
	assert.NotNil(t, cmd.Flags().Lookup("list"))
}

// ---------- Field selection tests ----------

func TestSelectedFields(t *testing.T) {
	tests := []struct {
		name string
		opts showOptions
		want []types.DistroField
	}{
		{
			name: "default shows modules and description",
			opts: showOptions{},
			want: []types.DistroField{types.FieldModules, types.FieldDescription},
		},
		{
			name: "all",
			opts: showOptions{All: true, ID: true},
			want: []types.DistroField{
				types.FieldModules, types.FieldID, types.FieldDescription,
				types.FieldRelease, types.FieldCodename,
			},
		},
		{
			name: "fixed order",
			opts: showOptions{Codename: true, ID: true},
			want: []types.DistroField{types.FieldID, types.FieldCodename},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, selectedFields(tt.opts)); diff != "" {
				t.Fatalf("unexpected fields (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------- Command execution tests ----------

func TestShowAll(t *testing.T) {
	useStubService(t, "", "4.0-1 lsb-core-amd64")
	marker := writeMarker(t, "7.0\n")

	out, err := runRoot(t, "show", "--all",
		"--debian-version-file", marker,
		"--lsb-release-file", filepath.Join(t.TempDir(), "missing"),
	)
	require.NoError(t, err)
	want := "LSB Version:\tcore-2.0-amd64:core-3.0-amd64:core-3.1-amd64:core-3.2-amd64:core-4.0-amd64\n" +
		"Distributor ID:\tDebian\n" +
		"Description:\tDebian GNU/Linux 7.0 (wheezy)\n" +
		"Release:\t7.0\n" +
		"Codename:\twheezy\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestShowShortCodenameFromPolicy(t *testing.T) {
	policy := "Package files:\n" +
		" 500 http://deb.debian.org/debian testing/main amd64 Packages\n" +
		"     release o=Debian,a=testing,n=trixie,l=Debian,c=main,b=amd64\n"
	useStubService(t, policy, "")
	marker := writeMarker(t, "trixie/sid\n")

	out, err := runRoot(t, "show", "-s", "-r", "-c",
		"--debian-version-file", marker,
		"--lsb-release-file", filepath.Join(t.TempDir(), "missing"),
	)
	require.NoError(t, err)
	assert.Equal(t, "testing trixie\n", out)
}

func TestShowRejectsUnknownFormat(t *testing.T) {
	useStubService(t, "", "")
	marker := writeMarker(t, "7.0\n")

	_, err := runRoot(t, "show", "-i", "--format", "xml",
		"--debian-version-file", marker,
		"--lsb-release-file", filepath.Join(t.TempDir(), "missing"),
	)
	require.Error(t, err)
	assert.Equal(t, 2, exitCodeForError(err))
}

func TestShowShortFromEnvironment(t *testing.T) {
	useStubService(t, "", "")
	marker := writeMarker(t, "7.0\n")
	t.Setenv("LSB_SHORT", "true")

	out, err := runRoot(t, "show", "-r", "-c",
		"--debian-version-file", marker,
		"--lsb-release-file", filepath.Join(t.TempDir(), "missing"),
	)
	require.NoError(t, err)
	assert.Equal(t, "7.0 wheezy\n", out)
}

func TestExecuteReturnsExitCode(t *testing.T) {
	useStubService(t, "", "")
	marker := writeMarker(t, "7.0\n")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"show", "-i", "--format", "xml",
		"--debian-version-file", marker,
		"--lsb-release-file", filepath.Join(t.TempDir(), "missing"),
	})
	assert.Equal(t, 2, execute(root))
	assert.Empty(t, out.String())

	ok := newRootCommand()
	ok.SetOut(&out)
	ok.SetArgs([]string{"modules"})
	assert.Equal(t, 0, execute(ok))
	assert.Equal(t, "No LSB modules are available.\n", out.String())
}

func TestModulesCommand(t *testing.T) {
	useStubService(t, "", "3.1-1 lsb-desktop-noarch")

	out, err := runRoot(t, "modules")
	require.NoError(t, err)
	assert.Equal(t, "desktop-3.1-noarch\n", out)
}

func TestModulesCommandNone(t *testing.T) {
	useStubService(t, "", "")

	out, err := runRoot(t, "modules", "--list")
	require.NoError(t, err)
	assert.Equal(t, "No LSB modules are available.\n", out)
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveBool(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("test-flag", false, "test flag")
	require.NoError(t, cmd.Flags().Set("test-flag", "true"))
	assert.True(t, resolveBool(cmd, true, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")

	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("dpkg-query not found"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	withMsg := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("something broke")
	assert.Equal(t, "something broke", errorMessage(withMsg))
	assert.Equal(t, assert.AnError.Error(), errorMessage(assert.AnError))
}
