package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"
)

// VerifyFile checks if an existing file matches the expected SHA256 checksum.
func VerifyFile(filePath, expectedSHA256 string) error {
	actualSHA256, err := ComputeSHA256(filePath)
	if err != nil {
		return err
	}

	// Normalize both checksums to lowercase for comparison
	expectedNorm := strings.ToLower(strings.TrimSpace(expectedSHA256))
	if actualSHA256 != expectedNorm {
		return &ChecksumMismatchError{
			Expected: expectedSHA256,
			Actual:   actualSHA256,
		}
	}

	return nil
}

// ComputeSHA256 computes the SHA256 checksum of a file.
func ComputeSHA256(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
