// Package cargo reads crate manifests and queries cargo's project metadata.
package cargo

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*ManifestLoader)(nil)

// manifestDTO mirrors the Cargo.toml fields the pipeline decides on.
type manifestDTO struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Lib struct {
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
}

// ManifestLoader loads and validates Cargo.toml files.
type ManifestLoader struct{}

// NewManifestLoader creates a new ManifestLoader.
func NewManifestLoader() *ManifestLoader {
	return &ManifestLoader{}
}

// Load parses the Cargo.toml in dir. The manifest must declare a package
// name and a lib target whose crate-type includes cdylib; anything else is
// not a valid wasm build target and fails before any subprocess runs.
func (l *ManifestLoader) Load(dir string) (*domain.CrateManifest, error) {
	path := filepath.Join(dir, domain.CargoManifestName)

	var dto manifestDTO
	if _, err := toml.DecodeFile(path, &dto); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidManifest, err), "manifest", path)
	}

	if dto.Package.Name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "manifest declares no package name"), "manifest", path)
	}

	manifest := &domain.CrateManifest{
		Name:       dto.Package.Name,
		CrateTypes: dto.Lib.CrateType,
		Dir:        dir,
	}

	if !manifest.HasCdylib() {
		wrapped := zerr.Wrap(domain.ErrInvalidManifest, `crate-type must include "cdylib"`)
		return nil, zerr.With(zerr.With(wrapped, "manifest", path), "crate", manifest.Name)
	}

	return manifest, nil
}

// FindCrateDir walks up from dir to the nearest directory containing a
// Cargo.toml, stopping at the filesystem root.
func (l *ManifestLoader) FindCrateDir(dir string) (string, error) {
	current := filepath.Clean(dir)
	for {
		candidate := filepath.Join(current, domain.CargoManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "no Cargo.toml found in any parent directory"), "dir", dir)
		}
		current = parent
	}
}
