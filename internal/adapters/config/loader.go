// Package config loads the crab.yaml project configuration.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader against a crab.yaml file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// DiscoverRoot walks up from cwd to the nearest directory containing a
// crab.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	current := abs
	for {
		candidate := filepath.Join(current, domain.ProjectFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(
				zerr.Wrap(domain.ErrProjectNotFound, "no crab.yaml in any parent directory"),
				"cwd", cwd,
			)
		}
		current = parent
	}
}

// Load discovers the project root above cwd, reads crab.yaml with strict
// field checking, and returns the validated project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(root, domain.ProjectFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the discovered project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrProjectNotFound, "project file vanished after discovery"),
				"path", path,
			)
		}
		return nil, zerr.With(errors.Join(domain.ErrProjectReadFailed, err), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var dto projectDTO
	if err := dec.Decode(&dto); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrProjectParseFailed, err), "path", path)
	}

	return l.validate(root, &dto)
}

// validate converts the DTO into the domain project, resolving asset paths
// against the root and rejecting unknown targets and duplicate assets.
func (l *Loader) validate(root string, dto *projectDTO) (*domain.Project, error) {
	target := domain.TargetBrowser
	if dto.Target != "" {
		parsed, err := domain.ParseTarget(dto.Target)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrInvalidProject, err), "target", dto.Target)
		}
		target = parsed
	}

	if dto.Concurrency < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProject, "concurrency must not be negative"), "concurrency", dto.Concurrency)
	}

	seen := make(map[string]struct{}, len(dto.Assets))
	assets := make([]string, 0, len(dto.Assets))
	for _, a := range dto.Assets {
		abs := a
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, a)
		}
		abs = filepath.Clean(abs)

		if _, dup := seen[abs]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProject, "duplicate asset"), "asset", a)
		}
		seen[abs] = struct{}{}
		assets = append(assets, abs)
	}

	return &domain.Project{
		Root:        root,
		Target:      target,
		Assets:      assets,
		Concurrency: dto.Concurrency,
	}, nil
}
