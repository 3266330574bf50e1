//go:build !linux && !darwin

package platform

import "runtime"

func systemName() string {
	return runtime.GOOS
}
