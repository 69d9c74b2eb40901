package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/crab/internal/ui/style"
)

var (
	assetPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	assetRunningStyle = lipgloss.NewStyle().
				Foreground(style.Coral).
				Bold(true)

	assetDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	assetErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Coral).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Coral).
			Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			Padding(0, 1)

	logStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(style.Slate)
)
