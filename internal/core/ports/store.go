package ports

import "go.trai.ch/crab/internal/core/domain"

// BuildInfoStore persists per-asset build records between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for an asset under the given project root.
	// Returns nil, nil if the asset has never been built.
	Get(root, asset string) (*domain.BuildInfo, error)

	// Put stores the build info for an asset under the given project root.
	Put(root string, info domain.BuildInfo) error
}
