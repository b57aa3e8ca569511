// Package output provides styled terminal rendering helpers for ideation.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for clean results.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for critical findings.
	ColorError = lipgloss.Color("#ef5350")

	// ColorHigh is used for high severity findings.
	ColorHigh = lipgloss.Color("#ffa726")

	// ColorWarning is used for medium severity findings.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader  lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleHigh    lipgloss.Style
	StyleWarning lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleBold    lipgloss.Style

	// StyleLabel is used for summary labels.
	StyleLabel lipgloss.Style

	// StyleValue is used for summary values.
	StyleValue lipgloss.Style
)

func init() {
	SetNoColor(false)
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally by rebuilding the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleHigh = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
		StyleValue = plain.Width(12)
		return
	}

	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleHigh = lipgloss.NewStyle().Foreground(ColorHigh)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(24)
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled decides whether styled output should be written to f.
// Color needs to be wanted by configuration, not vetoed by NO_COLOR, and
// f must be a terminal.
func ColorEnabled(f *os.File, wanted bool) bool {
	if !wanted {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// SeverityStyle returns the style for a severity label.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "critical":
		return StyleError
	case "high":
		return StyleHigh
	case "medium":
		return StyleWarning
	default:
		return StyleMuted
	}
}
