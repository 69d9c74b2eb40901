package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering. It decouples telemetry
// collection from presentation, so the same event stream can drive either a
// rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle. Asynchronous
	// renderers may launch background goroutines here.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush any
	// buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated. Synchronous
	// renderers may return immediately.
	Wait() error

	// OnPlanEmit is called once the set of assets to build is known.
	OnPlanEmit(assets []string)

	// OnBuildStart is called when an asset build begins.
	// spanID uniquely identifies this build execution.
	OnBuildStart(spanID, asset string, startTime time.Time)

	// OnBuildLog is called when a build emits output. data may contain
	// partial lines or ANSI sequences.
	OnBuildLog(spanID string, data []byte)

	// OnBuildComplete is called when an asset build finishes.
	// err is nil on success.
	OnBuildComplete(spanID string, endTime time.Time, err error)
}
