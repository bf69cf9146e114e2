package adapters

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lsb-release/internal/ports"
)

const DefaultDebianVersionPath = "/etc/debian_version"

// VersionFileAdapter reads the Debian version marker file.
type VersionFileAdapter struct {
	Path string
}

func NewVersionFileAdapter(path string) VersionFileAdapter {
	if path == "" {
		path = DefaultDebianVersionPath
	}
	return VersionFileAdapter{Path: path}
}

func (a VersionFileAdapter) ReadVersionMarker(_ context.Context) (string, bool, error) {
	content, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unable to open " + a.Path).
			WithCause(err)
	}
	return string(content), true, nil
}

var _ ports.VersionMarkerPort = VersionFileAdapter{}
