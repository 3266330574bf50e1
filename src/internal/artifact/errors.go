package artifact

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned for platforms the addon has no binaries for
var ErrUnknownPlatform = errors.New("unknown platform")

// NotFoundError is returned when the built library is missing
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("built library not found: %s", e.Path)
}

// ChecksumMismatchError is returned when a copied file differs from its source
type ChecksumMismatchError struct {
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, got %s", e.Expected, e.Actual)
}
