// Package fs provides filesystem-backed fingerprinting for dependency sets.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Fingerprinter)(nil)

// Fingerprinter computes dependency-set fingerprints using XXHash.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint hashes the contents of the given paths in sorted order. Each
// entry is framed as path, NUL, content hash, so renames and content changes
// both alter the result.
func (f *Fingerprinter) Fingerprint(paths []string) (string, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	hasher := xxhash.New()

	for _, path := range sorted {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		contentHash, err := f.hashFile(path)
		if err != nil {
			return "", err
		}

		if err := binary.Write(hasher, binary.LittleEndian, contentHash); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashFile computes the XXHash of a file's content.
func (f *Fingerprinter) hashFile(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
