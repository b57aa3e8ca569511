package output

import (
	"fmt"
	"strings"
)

// MaxPriority is the highest score a finding can get: critical, widespread,
// always, low cost.
const MaxPriority = 36.0

// PriorityBar renders a bar scaled against MaxPriority followed by the
// score itself.
// Example: "██████░░░░ 22.50"
func PriorityBar(priority float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int((priority / MaxPriority) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	if filled == 0 && priority > 0 {
		filled = 1
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleMuted
	switch {
	case priority >= 12:
		style = StyleError
	case priority >= 4:
		style = StyleHigh
	case priority >= 1:
		style = StyleWarning
	}

	return fmt.Sprintf("%s %s", style.Render(bar), StyleMuted.Render(fmt.Sprintf("%5.2f", priority)))
}

// Severity renders a severity label in its color, "-" when empty.
func Severity(severity string) string {
	if severity == "" {
		return StyleMuted.Render("-")
	}
	return SeverityStyle(severity).Render(severity)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
