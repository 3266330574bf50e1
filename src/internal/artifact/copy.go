package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lua-bridge/build-addon/src/internal/ui"
	"github.com/schollz/progressbar/v3"
)

// CopyFile copies srcPath to destPath, replacing any existing file, and
// returns the SHA256 checksum of the copied bytes.
//
// Parent directories of destPath are created as needed. Permission bits and
// the modification time of the source are carried over where the filesystem
// supports it. The destination is re-read afterwards and compared against the
// source checksum. When progress is non-nil a progress bar is drawn to it.
func CopyFile(srcPath, destPath string, progress io.Writer) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: srcPath}
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", srcPath)
	}

	ui.Debug("Copying %s (%d bytes)", srcPath, info.Size())
	ui.Debug("Destination: %s", destPath)

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return "", err
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = in.Close() }()

	hasher := sha256.New()
	writers := []io.Writer{hasher}
	if progress != nil {
		writers = append(writers, progressbar.NewOptions64(
			info.Size(),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Copying"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		))
	}

	if err := writeFile(destPath, in, info.Mode().Perm(), writers...); err != nil {
		return "", err
	}

	preserveMetadata(destPath, info)

	checksum := hex.EncodeToString(hasher.Sum(nil))
	if err := VerifyFile(destPath, checksum); err != nil {
		return "", err
	}

	ui.Debug("SHA256: %s", checksum)
	return checksum, nil
}

// writeFile streams src into destPath, also feeding every byte to extra.
// An existing file is truncated so a second copy replaces it instead of
// growing it. When the copy fails destPath is removed, never left partly written.
func writeFile(destPath string, src io.Reader, perm fs.FileMode, extra ...io.Writer) error {
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	_, err = io.Copy(io.MultiWriter(append([]io.Writer{out}, extra...)...), src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := os.Remove(destPath); removeErr != nil {
			ui.Debug("Could not remove partial copy %s: %v", destPath, removeErr)
		}
		return err
	}
	return nil
}

// preserveMetadata applies the source mode and modification time to path.
// OpenFile only honours the mode when it creates the file, hence the Chmod.
func preserveMetadata(path string, info fs.FileInfo) {
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		ui.Debug("Could not preserve mode of %s: %v", path, err)
	}
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		ui.Debug("Could not preserve modification time of %s: %v", path, err)
	}
}
