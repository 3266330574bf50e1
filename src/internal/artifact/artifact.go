// Package artifact maps platforms to the lua_bridge binaries SCons produces
// and to the files the host application loads from the addon directory.
package artifact

import (
	"fmt"
	"path"

	"github.com/lua-bridge/build-addon/src/internal/constants"
	"github.com/lua-bridge/build-addon/src/internal/platform"
)

// Configuration is a build variant of the addon
type Configuration string

const (
	Debug   Configuration = constants.ConfigDebug
	Release Configuration = constants.ConfigRelease
)

// Configurations returns the build variants in build order
func Configurations() []Configuration {
	return []Configuration{Debug, Release}
}

func (c Configuration) String() string {
	return string(c)
}

// layout describes where one platform's binary comes from and goes to
type layout struct {
	source string // file SCons leaves in the working directory
	target string // destination name, %s is the configuration
}

var layouts = map[platform.Platform]layout{
	platform.Windows: {
		source: "lua_bridge.dll",
		target: "lua_bridge.windows.template_%s.x86_64.dll",
	},
	platform.Linux: {
		source: "libluabridge.so",
		target: "lua_bridge.linux.template_%s.x86_64.so",
	},
	platform.MacOS: {
		source: "libluabridge.dylib",
		target: "lua_bridge.macos.template_%s.framework",
	},
}

// SourceFilename returns the name of the library SCons builds for p.
// It returns false for platforms without a layout.
func SourceFilename(p platform.Platform) (string, bool) {
	l, ok := layouts[p]
	if !ok {
		return "", false
	}
	return l.source, true
}

// TargetFilename returns the file name the host application expects for p
// built in configuration cfg. It returns false for platforms without a layout.
func TargetFilename(p platform.Platform, cfg Configuration) (string, bool) {
	l, ok := layouts[p]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(l.target, cfg), true
}

// TargetDirectory returns the slash-separated addon directory for p,
// relative to the working directory. It does not depend on the configuration.
// It returns false for platforms without a layout.
func TargetDirectory(p platform.Platform) (string, bool) {
	if _, ok := layouts[p]; !ok {
		return "", false
	}
	return path.Join(constants.AddonRootDir, constants.AddonBinDir, p.String()), true
}

// TargetPath returns TargetDirectory and TargetFilename joined.
func TargetPath(p platform.Platform, cfg Configuration) (string, bool) {
	dir, ok := TargetDirectory(p)
	if !ok {
		return "", false
	}
	name, _ := TargetFilename(p, cfg)
	return path.Join(dir, name), true
}
