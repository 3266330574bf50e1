//go:build linux || darwin

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// systemName returns the kernel's sysname ("Linux", "Darwin").
func systemName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:])
}
