//go:build !linux && !freebsd && !netbsd && !openbsd && !darwin

package adapters

import (
	"runtime"

	"lsb-release/internal/ports"
)

// KernelAdapter reports the kernel name from uname(2). Platforms without
// uname fall back to runtime.GOOS.
type KernelAdapter struct{}

func NewKernelAdapter() KernelAdapter {
	return KernelAdapter{}
}

func (KernelAdapter) KernelName() string {
	return runtime.GOOS
}

var _ ports.KernelPort = KernelAdapter{}
