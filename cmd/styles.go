package cmd

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for light and dark terminals.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleID      = lipgloss.NewStyle().Foreground(colorDim)
	styleTitle   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDone    = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleTag     = lipgloss.NewStyle().Foreground(colorCyan)
	styleOverdue = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Priority badge styles.
var (
	badgeHigh   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	badgeMedium = lipgloss.NewStyle().Foreground(colorYellow)
	badgeLow    = lipgloss.NewStyle().Foreground(colorDim)
)
