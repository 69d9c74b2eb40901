package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.assetList(),
		m.logPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) assetList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ASSETS") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Assets) {
		end = len(m.Assets)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		row := m.Assets[i]
		s.WriteString(m.renderAssetRow(i, row) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderAssetRow(index int, row *AssetRow) string {
	icon := m.getAssetIcon(row)
	style := m.getAssetStyle(row)

	// Highlight selected asset
	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		// If not Done/Error, highlight the text as well
		if row.Status != StatusDone && row.Status != StatusError {
			style = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, row.Asset)
	return cursor + style.Render(content)
}

func (m *Model) getAssetIcon(row *AssetRow) string {
	switch row.Status {
	case StatusRunning:
		return "●"
	case StatusDone:
		return "✓"
	case StatusError:
		return "✗"
	default: // Pending
		return "○"
	}
}

func (m *Model) getAssetStyle(row *AssetRow) lipgloss.Style {
	switch row.Status {
	case StatusRunning:
		return assetRunningStyle
	case StatusDone:
		return assetDoneStyle
	case StatusError:
		return assetErrorStyle
	default: // Pending
		return assetPendingStyle
	}
}

//nolint:gocritic // hugeParam ignored
func (m *Model) logPane() string {
	var header string
	var content string

	if m.ActiveAsset != "" {
		status := ""
		if m.FollowMode {
			status = " (Following)"
		} else {
			status = " (Manual)"
		}
		header = titleStyle.Render("LOGS: " + m.ActiveAsset + status)

		if row, ok := m.AssetMap[m.ActiveAsset]; ok {
			content = row.Term.View()
		}
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}
