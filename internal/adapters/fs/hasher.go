package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(errors.Join(domain.ErrFileOpenFailed, err), "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(errors.Join(domain.ErrFileHashFailed, err), "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashBytes computes the XXHash of data.
func (h *Hasher) HashBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FormatDigest renders a digest the way fingerprints are shown.
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
