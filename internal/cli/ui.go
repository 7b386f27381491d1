package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleValue for computed results.
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleSuccess for cache-hit annotations.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleDim for secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
