// Package fingerprint computes content hashes for profiled files. Two
// files with identical bytes always get identical digests, which makes
// the hash usable as a duplicate-content signal across a batch.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

const chunkSize = 8 * 1024

// Hash returns the hex SHA-256 digest of the file's content. The file
// is read in fixed-size chunks so memory stays flat regardless of size.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
