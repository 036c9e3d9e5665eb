package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the TUI views.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleFocused for the active input field.
	styleFocused = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleSuccess for confirmation messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleError for failure messages.
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)
