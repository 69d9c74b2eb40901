// Package toolchain detects which external build tools are installed.
package toolchain

import (
	"context"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
)

var _ ports.ToolProber = (*Prober)(nil)

// Prober implements ports.ToolProber against the command runner's PATH
// lookup. Probing is best-effort by contract: any lookup failure means the
// tool is absent, and the pipeline decides what that implies.
type Prober struct {
	runner ports.CommandRunner
}

// NewProber creates a Prober backed by the given runner.
func NewProber(runner ports.CommandRunner) *Prober {
	return &Prober{runner: runner}
}

// Probe checks for cargo, wasm-pack and wasm-bindgen. It never returns an
// error; presence is re-probed on every call because tools may be installed
// or removed between builds.
func (p *Prober) Probe(_ context.Context) domain.Toolchain {
	return domain.Toolchain{
		HasCargo:       p.has(domain.ToolCargo),
		HasWasmPack:    p.has(domain.ToolWasmPack),
		HasWasmBindgen: p.has(domain.ToolWasmBindgen),
	}
}

func (p *Prober) has(tool string) bool {
	_, err := p.runner.LookPath(tool)
	return err == nil
}
