package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/adapters/cargo"
	"go.trai.ch/crab/internal/adapters/logger"
	"go.trai.ch/crab/internal/adapters/shell"
	"go.trai.ch/crab/internal/adapters/toolchain"
	"go.trai.ch/crab/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			toolchain.NodeID,
			cargo.ManifestNodeID,
			cargo.MetadataNodeID,
			cargo.ConfigNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.ToolProber](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			metadata, err := graft.Dep[ports.MetadataClient](ctx)
			if err != nil {
				return nil, err
			}
			configs, err := graft.Dep[ports.ConfigParser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, prober, manifests, metadata, configs, log), nil
		},
	})
}
