package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	if paths == nil {
		t.Fatal("DefaultPaths() returned nil")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if paths.Root != cwd {
		t.Errorf("Root = %q, want %q", paths.Root, cwd)
	}
}

func TestNewPaths(t *testing.T) {
	root := t.TempDir()
	if got := NewPaths(root).Root; got != root {
		t.Errorf("Root = %q, want %q", got, root)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	paths := NewPaths(root)

	tests := []struct {
		rel  string
		want string
	}{
		{"libluabridge.so", filepath.Join(root, "libluabridge.so")},
		{
			"project_example/addons/lua_bridge/bin/linux",
			filepath.Join(root, "project_example", "addons", "lua_bridge", "bin", "linux"),
		},
		{"", root},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := paths.Resolve(tt.rel); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}
