// Package testutil provides helpers shared by the package tests
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lua-bridge/build-addon/src/internal/ui"
)

// CaptureOutput redirects ui output into the returned buffer, with colors
// disabled, until the test ends
func CaptureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	ui.SetColor(false)
	restore := ui.SetOutput(&buf)
	t.Cleanup(restore)
	return &buf
}

// WriteFile writes content to root/rel, creating parent directories
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}
