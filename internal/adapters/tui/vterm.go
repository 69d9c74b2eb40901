package tui

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/midterm"
)

// Vterm is the scrollback pane for one asset's build output. Raw subprocess
// bytes are fed through a virtual terminal so control sequences render the
// way they would in a real one; the pane exposes a fixed-height window that
// sticks to the tail until the user scrolls away.
type Vterm struct {
	vt *midterm.Terminal

	// Offset is the index of the first visible row.
	Offset int
	// Height is the number of visible rows.
	Height int
	// Width is the pane width in columns.
	Width int

	mu sync.Mutex
}

// NewVterm creates an empty pane backed by an auto-resizing terminal.
func NewVterm() *Vterm {
	return &Vterm{vt: midterm.NewAutoResizingTerminal()}
}

// Write feeds subprocess output into the terminal. A pane showing the tail
// keeps showing it as rows arrive; a scrolled-up pane holds its position.
func (v *Vterm) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	follow := v.Offset >= v.maxOffset()
	n, err := v.vt.Write(p)
	if follow {
		v.Offset = v.maxOffset()
	}
	return n, err
}

// SetHeight resizes the visible window, keeping a tail view on the tail.
func (v *Vterm) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	follow := v.Offset >= v.maxOffset()
	v.Height = max(h, 1)
	if follow {
		v.Offset = v.maxOffset()
	}
	v.clampOffset()
}

// SetWidth resizes the pane and the terminal behind it.
func (v *Vterm) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Width = max(w, 1)
	v.vt.ResizeX(v.Width)
}

// UsedHeight returns the number of rows written so far.
func (v *Vterm) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vt.UsedHeight()
}

// View renders the visible rows.
func (v *Vterm) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.clampOffset()

	var b strings.Builder
	last := min(v.Offset+v.Height, v.vt.UsedHeight())
	for row := v.Offset; row < last; row++ {
		if row > v.Offset {
			b.WriteByte('\n')
		}
		_ = v.vt.RenderLine(&b, row)
	}
	return b.String()
}

// Update scrolls the pane in response to navigation keys.
func (v *Vterm) Update(msg tea.KeyMsg) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch msg.String() {
	case "up", "k":
		v.Offset--
	case "down", "j":
		v.Offset++
	case "pgup":
		v.Offset -= v.Height
	case "pgdown":
		v.Offset += v.Height
	case "home":
		v.Offset = 0
	case "end":
		v.Offset = v.maxOffset()
	}
	v.clampOffset()
}

// ScrollToEnd jumps the window to the newest output.
func (v *Vterm) ScrollToEnd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Offset = v.maxOffset()
}

func (v *Vterm) clampOffset() {
	if v.Offset > v.maxOffset() {
		v.Offset = v.maxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

func (v *Vterm) maxOffset() int {
	return max(v.vt.UsedHeight()-v.Height, 0)
}
