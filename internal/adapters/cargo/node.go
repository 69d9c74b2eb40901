package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/adapters/shell"
	"go.trai.ch/crab/internal/core/ports"
)

// Node IDs for the cargo adapter Graft nodes.
const (
	ManifestNodeID graft.ID = "adapter.cargo.manifest"
	MetadataNodeID graft.ID = "adapter.cargo.metadata"
	ConfigNodeID   graft.ID = "adapter.cargo.config"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewManifestLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.MetadataClient]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.MetadataClient, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadataClient(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigParser]{
		ID:        ConfigNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigParser, error) {
			return NewConfigParser(), nil
		},
	})
}
