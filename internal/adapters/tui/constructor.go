// Package tui provides an interactive terminal user interface for asset
// builds.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/crab/internal/ui/output"
)

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return &Model{
		Assets:     make([]*AssetRow, 0),
		AssetMap:   make(map[string]*AssetRow),
		SpanMap:    make(map[string]*AssetRow),
		AutoScroll: true,
		FollowMode: true,
	}
}
