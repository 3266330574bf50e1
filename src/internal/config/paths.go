// Package config manages build-addon configuration such as the working paths
package config

import (
	"os"
	"path/filepath"
)

// Paths locates the directory the build runs in. SCons is started there,
// leaves its libraries there, and the addon tree lives below it.
type Paths struct {
	Root string
}

// DefaultPaths returns the paths rooted at the current working directory
func DefaultPaths() *Paths {
	return NewPaths(getRootDir())
}

// NewPaths returns the paths rooted at root
func NewPaths(root string) *Paths {
	return &Paths{Root: root}
}

// getRootDir returns the working directory the build runs in
func getRootDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		// Relative paths still resolve against the process working directory
		return "."
	}
	return cwd
}

// Resolve joins a slash-separated path relative to the root directory
func (p *Paths) Resolve(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}
