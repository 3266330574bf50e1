package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/lua-bridge/build-addon/src/internal/ui"
)

func TestWriteFile(t *testing.T) {
	root := t.TempDir()
	path := WriteFile(t, root, "project_example/addons/lua_bridge/bin/linux/out.so", "data")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q, want %q", got, "data")
	}
}

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t)
	ui.Success("linux debug build completed")

	if !strings.Contains(out.String(), "✓ linux debug build completed") {
		t.Errorf("captured output = %q", out.String())
	}
}
