// Package platform resolves the target platforms of the lua_bridge addon
package platform

import (
	"strings"

	"github.com/lua-bridge/build-addon/src/internal/constants"
)

// Platform identifies a target operating system of the addon.
// Unknown is a real variant, returned for hosts the addon does not support.
type Platform int

const (
	Unknown Platform = iota
	Windows
	Linux
	MacOS
)

// Known returns the supported platforms in build order.
func Known() []Platform {
	return []Platform{Windows, Linux, MacOS}
}

// String returns the platform name used by SCons and the addon layout.
func (p Platform) String() string {
	switch p {
	case Windows:
		return constants.PlatformWindows
	case Linux:
		return constants.PlatformLinux
	case MacOS:
		return constants.PlatformMacOS
	default:
		return constants.PlatformUnknown
	}
}

// IsKnown reports whether p is one of the supported platforms.
func (p Platform) IsKnown() bool {
	return p == Windows || p == Linux || p == MacOS
}

// FromSystemName maps a host system name ("Linux", "Darwin", "Windows")
// to a Platform. Unrecognized systems map to Unknown.
func FromSystemName(system string) Platform {
	switch strings.ToLower(strings.TrimSpace(system)) {
	case constants.OSWindows:
		return Windows
	case constants.OSDarwin:
		return MacOS
	case constants.OSLinux:
		return Linux
	default:
		return Unknown
	}
}

// Current returns the platform of the running host. It never fails;
// hosts other than Windows, Linux and macOS resolve to Unknown.
func Current() Platform {
	return FromSystemName(systemName())
}
