//go:build linux || freebsd || netbsd || openbsd || darwin

package adapters

import (
	"runtime"

	"golang.org/x/sys/unix"

	"lsb-release/internal/ports"
)

// KernelAdapter reports the kernel name from uname(2). Platforms without
// uname fall back to runtime.GOOS.
type KernelAdapter struct{}

func NewKernelAdapter() KernelAdapter {
	return KernelAdapter{}
}

func (KernelAdapter) KernelName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:])
}

var _ ports.KernelPort = KernelAdapter{}
