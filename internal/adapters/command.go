package adapters

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lsb-release/internal/shared"
)

// commandRunner executes an external program and returns its stdout.
// Tests replace it to avoid depending on the host's package manager.
type commandRunner func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

// runCommand runs name with args and C locale. A non-zero exit still
// returns whatever the program printed, because dpkg-query and
// apt-cache report partial results that way.
func runCommand(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.Output()
	if err == nil {
		return output, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(name + " not found").
			WithCause(err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		log.Debug().Str("command", name).Int("exit_code", exitErr.ExitCode()).Msg("command exited with non-zero status")
		if len(output) > 0 {
			return output, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(name + " failed").
			WithCause(shared.CommandError(exitErr.Stderr, err))
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(name + " failed").
		WithCause(err)
}
