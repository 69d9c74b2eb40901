// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crab/internal/adapters/cargo"
	_ "go.trai.ch/crab/internal/adapters/config"
	_ "go.trai.ch/crab/internal/adapters/fs"
	_ "go.trai.ch/crab/internal/adapters/logger"
	_ "go.trai.ch/crab/internal/adapters/shell"
	_ "go.trai.ch/crab/internal/adapters/store"
	_ "go.trai.ch/crab/internal/adapters/toolchain"
	_ "go.trai.ch/crab/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/crab/internal/app"
	_ "go.trai.ch/crab/internal/engine/pipeline"
)
