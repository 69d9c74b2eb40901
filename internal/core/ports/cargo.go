package ports

import (
	"context"

	"go.trai.ch/crab/internal/core/domain"
)

//go:generate mockgen -source=cargo.go -destination=mocks/mock_cargo.go -package=mocks

// ManifestLoader reads and validates crate manifests.
type ManifestLoader interface {
	// Load parses the Cargo.toml in dir. It fails if the manifest cannot be
	// read or does not declare a cdylib library target.
	Load(dir string) (*domain.CrateManifest, error)

	// FindCrateDir walks up from dir to the nearest directory containing a
	// Cargo.toml, stopping at the filesystem root.
	FindCrateDir(dir string) (string, error)
}

// MetadataClient queries cargo's structured project description.
type MetadataClient interface {
	// TargetDirectory returns the crate's shared build output directory as
	// reported by cargo metadata.
	TargetDirectory(ctx context.Context, crateDir string) (string, error)
}

// ConfigParser parses generic structured configuration files that are
// accepted as assets but trigger no build.
type ConfigParser interface {
	// Parse decodes the TOML document at path into a generic map.
	Parse(path string) (map[string]any, error)
}
