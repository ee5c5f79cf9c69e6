package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, bundle ids.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "applied" outcome.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" outcome.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" outcome (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, bundle ids).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (copying, rewriting, installing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleCommand styles shell commands shown to the user.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorCyan)
)

// Outcome status constants.
const (
	StatusApplied   = "applied"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given outcome status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusApplied:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width for the path column before the
// status suffix, so status words line up.
const minPathColumnWidth = 48

// FormatOutcomeLine renders a step path with a right-aligned, color-coded status suffix.
//
// Format: <phase>:<path>  <status>
func FormatOutcomeLine(phase, path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render(phase + ":")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatCommand renders a shell command the user can run by hand.
func FormatCommand(cmd string) string {
	return "  " + StyleCommand.Render(cmd)
}
