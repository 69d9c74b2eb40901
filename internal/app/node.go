package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/store"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/crab/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			logger.NodeID,
			store.NodeID,
			fs.NodeID,
			shell.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	projects, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	infoStore, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(projects, pipe, log, infoStore, hasher, runner, watch, config.CaptureEnv()), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
