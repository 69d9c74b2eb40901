package ports

// Hasher computes the dependency-set fingerprint used to decide whether an
// asset needs rebuilding.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes the contents of the given paths in a deterministic
	// order. Two calls over identical file contents yield the same value.
	Fingerprint(paths []string) (string, error)
}
