package hashutil

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"

	"github.com/arthur-debert/frece/pkg/types"
)

// New returns the hash used for checksums.
func New() hash.Hash {
	return sha256.New()
}

// Format renders a digest produced by New.
func Format(sum []byte) string {
	return fmt.Sprintf("sha256:%x", sum)
}

// Checksum calculates the SHA256 checksum of everything read from r
func Checksum(r io.Reader) (string, error) {
	h := New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return Format(h.Sum(nil)), nil
}

// CalculateFileChecksum calculates the SHA256 checksum of a file
func CalculateFileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	return Checksum(file)
}
