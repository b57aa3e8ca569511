// Package suggest turns findings into ranked, effort-rated suggestions.
package suggest

import "github.com/blackwell-systems/ideation/internal/finding"

// Effort labels, from cheapest to most expensive.
const (
	EffortQuick    = "Quick (< 1 hour)"
	EffortShort    = "Short (1-2 hours)"
	EffortMedium   = "Medium (2-4 hours)"
	EffortLong     = "Long (4-8 hours)"
	EffortExtended = "Extended (> 8 hours)"
)

// Suggestion is a finding enriched with its priority score and effort
// estimate. Suggestions are recomputed on every request and never cached.
type Suggestion struct {
	Title          string           `json:"title" yaml:"title"`
	Category       finding.Category `json:"category" yaml:"category"`
	Severity       finding.Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Impact         finding.Impact   `json:"impact,omitempty" yaml:"impact,omitempty"`
	Priority       float64          `json:"priority" yaml:"priority"`
	Description    string           `json:"description,omitempty" yaml:"description,omitempty"`
	Recommendation string           `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
	Files          []string         `json:"files,omitempty" yaml:"files,omitempty"`
	Effort         string           `json:"effort" yaml:"effort"`
}

// Scored pairs a finding with its computed priority.
type Scored struct {
	Finding  finding.Finding
	Priority float64
}
