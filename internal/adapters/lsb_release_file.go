package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"lsb-release/internal/ports"
)

const (
	DefaultLSBReleasePath = "/etc/lsb-release"
	lsbKeyPrefix          = "DISTRIB_"
)

// LSBReleaseFileAdapter reads DISTRIB_* overrides from /etc/lsb-release.
type LSBReleaseFileAdapter struct {
	Path string
}

func NewLSBReleaseFileAdapter(path string) LSBReleaseFileAdapter {
	if path == "" {
		path = DefaultLSBReleasePath
	}
	return LSBReleaseFileAdapter{Path: path}
}

// ReadOverride returns the override keys without their DISTRIB_ prefix.
// A missing file yields an empty record.
func (a LSBReleaseFileAdapter) ReadOverride(_ context.Context) (map[string]string, error) {
	content, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unable to open " + a.Path).
			WithCause(err)
	}
	return ParseLSBRelease(string(content)), nil
}

// ParseLSBRelease parses KEY=value lines. Values are taken literally:
// one surrounding pair of double quotes is removed and the rest is
// trimmed, with no variable expansion or escape handling. godotenv
// validates the key so malformed lines are skipped one by one. Blank
// values are dropped.
func ParseLSBRelease(content string) map[string]string {
	out := map[string]string{}
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		rawKey, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, err := overrideKey(rawKey)
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("skipping invalid lsb-release line")
			continue
		}
		name, ok := strings.CutPrefix(key, lsbKeyPrefix)
		if !ok || name == "" {
			continue
		}
		if value = strings.TrimSpace(unquote(value)); value != "" {
			out[name] = value
		}
	}
	return out
}

// overrideKey returns the variable name on the left of "=".
func overrideKey(rawKey string) (string, error) {
	parsed, err := godotenv.Unmarshal(rawKey + "=")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(rawKey)
	if _, ok := parsed[name]; !ok || len(parsed) != 1 {
		return "", fmt.Errorf("invalid variable name %q", rawKey)
	}
	return name, nil
}

func unquote(value string) string {
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		if len(value) < 2 {
			return ""
		}
		return value[1 : len(value)-1]
	}
	return value
}

var _ ports.OverridePort = LSBReleaseFileAdapter{}
