package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	assetListWidthRatio = 0.3
	logPaneBorderWidth  = 4
)

// BuildStatus represents the current state of an asset build.
type BuildStatus string

const (
	// StatusPending indicates the build is waiting to start.
	StatusPending BuildStatus = "Pending"
	// StatusRunning indicates the build is currently executing.
	StatusRunning BuildStatus = "Running"
	// StatusDone indicates the build completed successfully.
	StatusDone BuildStatus = "Done"
	// StatusError indicates the build failed.
	StatusError BuildStatus = "Error"
)

// AssetRow represents a single asset in the UI list.
type AssetRow struct {
	Asset  string
	Status BuildStatus
	Term   *Vterm
}

// Model represents the main TUI state.
type Model struct {
	Assets      []*AssetRow
	AssetMap    map[string]*AssetRow
	SpanMap     map[string]*AssetRow
	AutoScroll  bool
	ActiveAsset string
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	LogWidth    int
	LogHeight   int
	FollowMode  bool
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) getSelectedAsset() *AssetRow {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Assets) {
		return m.Assets[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if row := m.getSelectedAsset(); row != nil {
		m.ActiveAsset = row.Asset

		if m.FollowMode && m.AutoScroll {
			row.Term.ScrollToEnd()
		}
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Assets)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "esc":
			m.FollowMode = true
			// Jump to the currently running build if any.
			for i, row := range m.Assets {
				if row.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			// Forward keys to the active asset's terminal if applicable
			if m.ActiveAsset != "" {
				if row, ok := m.AssetMap[m.ActiveAsset]; ok {
					row.Term.Update(msg)
				}
			}
		}

	case tea.WindowSizeMsg:
		// Split screen: 30% for asset list, 70% for logs
		listWidth := int(float64(msg.Width) * assetListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth

		headerHeight := lipgloss.Height(titleStyle.Render("TEST"))
		logHeight := msg.Height - headerHeight

		m.LogWidth = logWidth
		m.LogHeight = logHeight

		fullHeader := titleStyle.Render("ASSETS") + "\n\n"
		listInfoHeight := lipgloss.Height(fullHeader)
		m.ListHeight = msg.Height - listInfoHeight
		m.ensureVisible()

		for _, row := range m.Assets {
			row.Term.SetWidth(logWidth)
			row.Term.SetHeight(logHeight)
		}

	case MsgInitAssets:
		m.Assets = make([]*AssetRow, len(msg.Assets))
		m.AssetMap = make(map[string]*AssetRow, len(msg.Assets))
		m.SpanMap = make(map[string]*AssetRow)
		for i, asset := range msg.Assets {
			term := NewVterm()
			if m.LogWidth > 0 && m.LogHeight > 0 {
				term.SetWidth(m.LogWidth)
				term.SetHeight(m.LogHeight)
			}

			m.Assets[i] = &AssetRow{
				Asset:  asset,
				Status: StatusPending,
				Term:   term,
			}
			m.AssetMap[asset] = m.Assets[i]
		}

	case MsgBuildStart:
		if row, ok := m.AssetMap[msg.Asset]; ok {
			row.Status = StatusRunning
			m.SpanMap[msg.SpanID] = row

			// Focus follows activity ONLY if FollowMode is true
			if m.FollowMode {
				m.ActiveAsset = msg.Asset
				for i, r := range m.Assets {
					if r.Asset == msg.Asset {
						m.SelectedIdx = i
						break
					}
				}
				m.ensureVisible()
				m.updateActiveView()
			}
		}

	case MsgBuildLog:
		if row, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = row.Term.Write(msg.Data)
		}

	case MsgBuildComplete:
		if row, ok := m.SpanMap[msg.SpanID]; ok {
			if msg.Err != nil {
				row.Status = StatusError
			} else {
				row.Status = StatusDone
			}
		}
	}

	return m, cmd
}
