package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/lua-bridge/build-addon/src/internal/constants"
)

var verboseMode bool

// SetVerbose enables or disables debug output
func SetVerbose(enabled bool) {
	verboseMode = enabled
}

// IsVerbose reports whether debug output is enabled
func IsVerbose() bool {
	return verboseMode
}

// CheckVerboseEnv enables verbose mode when LUABRIDGE_VERBOSE is "1" or "true"
func CheckVerboseEnv() {
	switch strings.ToLower(os.Getenv(constants.EnvVerbose)) {
	case "1", "true":
		verboseMode = true
	}
}

// Debug prints a dimmed diagnostic line when verbose mode is on
func Debug(format string, args ...interface{}) {
	if !verboseMode {
		return
	}
	message := fmt.Sprintf(format, args...)
	_, _ = debugColor.Fprintf(out, "%s %s\n", debugSymbol, message)
}
