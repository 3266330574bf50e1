package artifact

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/iotest"
	"time"
)

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "libluabridge.so")
	dest := filepath.Join(tmpDir, "project_example", "addons", "lua_bridge", "bin", "linux",
		"lua_bridge.linux.template_debug.x86_64.so")

	content := []byte("hello world\n")
	writeTestFile(t, src, content)

	checksum, err := CopyFile(src, dest, nil)
	if err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	// SHA256 of "hello world\n"
	want := "a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447"
	if checksum != want {
		t.Errorf("checksum = %q, want %q", checksum, want)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("destination not written: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}
}

func TestCopyFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "lua_bridge.dll")
	dest := filepath.Join(tmpDir, "out", "lua_bridge.windows.template_debug.x86_64.dll")

	content := []byte("binary payload")
	writeTestFile(t, src, content)

	first, err := CopyFile(src, dest, nil)
	if err != nil {
		t.Fatalf("first CopyFile() error = %v", err)
	}
	second, err := CopyFile(src, dest, nil)
	if err != nil {
		t.Fatalf("second CopyFile() error = %v", err)
	}

	if first != second {
		t.Errorf("checksums differ between copies: %q vs %q", first, second)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("destination content after two copies = %q, want %q", got, content)
	}
}

func TestCopyFile_OverwritesLargerFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "libluabridge.dylib")
	dest := filepath.Join(tmpDir, "bin", "macos", "lua_bridge.macos.template_debug.framework")

	writeTestFile(t, dest, []byte("an older and much longer build output"))
	writeTestFile(t, src, []byte("new"))

	if _, err := CopyFile(src, dest, nil); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("destination content = %q, want %q", got, "new")
	}
}

func TestCopyFile_SourceMissing(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "libluabridge.so")
	destDir := filepath.Join(tmpDir, "bin", "linux")

	_, err := CopyFile(src, filepath.Join(destDir, "out.so"), nil)
	if err == nil {
		t.Fatal("expected error for missing source")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if notFound.Path != src {
		t.Errorf("NotFoundError.Path = %q, want %q", notFound.Path, src)
	}

	if _, err := os.Stat(destDir); !os.IsNotExist(err) {
		t.Errorf("destination directory should not be created when the source is missing")
	}
}

func TestCopyFile_SourceIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	if _, err := CopyFile(tmpDir, filepath.Join(tmpDir, "out"), nil); err == nil {
		t.Error("expected error when the source is a directory")
	}
}

func TestCopyFile_PreservesMetadata(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "libluabridge.so")
	dest := filepath.Join(tmpDir, "bin", "libcopy.so")

	writeTestFile(t, src, []byte("data"))
	if err := os.Chmod(src, 0755); err != nil {
		t.Fatal(err)
	}
	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	if _, err := CopyFile(src, dest, nil); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(modTime) {
		t.Errorf("ModTime = %v, want %v", info.ModTime(), modTime)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0755 {
		t.Errorf("Mode = %v, want %v", info.Mode().Perm(), os.FileMode(0755))
	}
}

func TestCopyFile_Progress(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "lua_bridge.dll")
	dest := filepath.Join(tmpDir, "bin", "lua_bridge.dll")
	writeTestFile(t, src, bytes.Repeat([]byte("x"), 4096))

	var progress bytes.Buffer
	if _, err := CopyFile(src, dest, &progress); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 4096 {
		t.Errorf("destination size = %d, want 4096", info.Size())
	}
}

func TestWriteFile_FailedCopyRemovesDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "lua_bridge.linux.template_debug.x86_64.so")
	writeTestFile(t, dest, []byte("previous library"))

	readErr := errors.New("read failed")
	src := io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(readErr))

	var seen bytes.Buffer
	err := writeFile(dest, src, 0644, &seen)
	if !errors.Is(err, readErr) {
		t.Fatalf("writeFile() error = %v, want %v", err, readErr)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("partly written destination left behind: %v", err)
	}
	if seen.String() != "partial" {
		t.Errorf("extra writer saw %q, want %q", seen.String(), "partial")
	}
}

func TestWriteFile_Truncates(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.so")
	writeTestFile(t, dest, []byte("a much longer previous library"))

	if err := writeFile(dest, bytes.NewReader([]byte("new")), 0644); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}
