package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/adapters/shell"
	"go.trai.ch/crab/internal/core/ports"
)

// NodeID is the unique identifier for the tool prober Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolProber]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolProber, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(runner), nil
		},
	})
}
