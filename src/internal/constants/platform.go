// Package constants defines common constants used across build-addon
package constants

// Host operating system names as reported by the kernel, lowercased
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Platform names understood by the SCons build and used in addon paths
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformMacOS   = "macos"
	PlatformUnknown = "unknown"
)

// Build configurations
const (
	ConfigDebug   = "debug"
	ConfigRelease = "release"
)

// External build tool
const (
	BuildTool       = "scons"
	BuildToolTarget = "target=release"
)

// Addon layout, relative to the working directory
const (
	AddonRootDir = "project_example/addons/lua_bridge"
	AddonBinDir  = "bin"
)

// Environment variables
const (
	EnvVerbose = "LUABRIDGE_VERBOSE"
)
