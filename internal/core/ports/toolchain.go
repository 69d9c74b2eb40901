package ports

import (
	"context"

	"go.trai.ch/crab/internal/core/domain"
)

// ToolProber detects which external build tools are installed.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolProber interface {
	// Probe checks for cargo, wasm-pack and wasm-bindgen on the executing
	// host. Probing is best-effort: a failing probe means "absent" and is
	// never surfaced as an error.
	Probe(ctx context.Context) domain.Toolchain
}
