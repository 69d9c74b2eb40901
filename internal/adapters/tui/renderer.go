package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/crab/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards plan initialization to the TUI.
func (r *Renderer) OnPlanEmit(assets []string) {
	r.program.Send(MsgInitAssets{
		Assets: assets,
	})
}

// OnBuildStart forwards build start events to the TUI.
func (r *Renderer) OnBuildStart(spanID, asset string, startTime time.Time) {
	r.program.Send(MsgBuildStart{
		SpanID:    spanID,
		Asset:     asset,
		StartTime: startTime,
	})
}

// OnBuildLog forwards build log data to the TUI.
func (r *Renderer) OnBuildLog(spanID string, data []byte) {
	r.program.Send(MsgBuildLog{
		SpanID: spanID,
		Data:   data,
	})
}

// OnBuildComplete forwards build completion events to the TUI.
func (r *Renderer) OnBuildComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgBuildComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
