package build

import (
	"fmt"
	"strings"

	"github.com/lua-bridge/build-addon/src/internal/constants"
)

// ToolRequirement describes a program the build needs on PATH.
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "scons").
	Name string

	// Purpose is a human-readable description of why this tool is needed.
	Purpose string
}

// RequiredTools returns the tools an addon build needs
func RequiredTools() []ToolRequirement {
	return []ToolRequirement{
		{Name: constants.BuildTool, Purpose: "SCons build system"},
	}
}

// CheckRequiredTools verifies all required tools can be found with lookPath.
//
// All missing tools are reported at once:
//
//	scons not found in PATH (required for: SCons build system)
//	missing required tools: scons (SCons build system), cl (C compiler)
func CheckRequiredTools(lookPath func(string) (string, error), requirements []ToolRequirement) error {
	var missing []ToolRequirement

	for _, req := range requirements {
		if _, err := lookPath(req.Name); err != nil {
			missing = append(missing, req)
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		if missing[0].Purpose == "" {
			return fmt.Errorf("%s not found in PATH", missing[0].Name)
		}
		return fmt.Errorf("%s not found in PATH (required for: %s)", missing[0].Name, missing[0].Purpose)
	}

	names := make([]string, 0, len(missing))
	for _, req := range missing {
		if req.Purpose != "" {
			names = append(names, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
		} else {
			names = append(names, req.Name)
		}
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(names, ", "))
}
