// Package finding defines the findings produced by analyzers and the
// per-category store the ideation engine keeps for one run.
package finding

// Category identifies which analyzer produced a finding.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryPerformance Category = "performance"
	CategoryDocs        Category = "docs"
	CategoryDebt        Category = "debt"
)

// Categories lists every category in the fixed processing order. The order
// is also the tie-break basis when suggestions are ranked.
var Categories = []Category{
	CategorySecurity,
	CategoryPerformance,
	CategoryDocs,
	CategoryDebt,
}

// ParseCategory returns the category named by s and whether it is known.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Severity rates how bad a finding is. The zero value means unspecified.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Impact rates how much of the codebase a finding touches.
type Impact string

const (
	ImpactWidespread Impact = "widespread"
	ImpactModerate   Impact = "moderate"
	ImpactLocalized  Impact = "localized"
)

// Frequency rates how often the problem is hit at runtime or during work.
type Frequency string

const (
	FrequencyAlways Frequency = "always"
	FrequencyOften  Frequency = "often"
	FrequencyRare   Frequency = "rare"
)

// FixCost rates how expensive a finding is to fix.
type FixCost string

const (
	FixCostLow    FixCost = "low"
	FixCostMedium FixCost = "medium"
	FixCostHigh   FixCost = "high"
)

// Finding is a single detected issue. Analyzers create findings; the engine
// only reads them.
type Finding struct {
	Category       Category  `json:"category" yaml:"category"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	Recommendation string    `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
	Severity       Severity  `json:"severity,omitempty" yaml:"severity,omitempty"`
	Impact         Impact    `json:"impact,omitempty" yaml:"impact,omitempty"`
	Frequency      Frequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	FixCost        FixCost   `json:"fix_cost,omitempty" yaml:"fix_cost,omitempty"`

	// Files lists the affected paths in order. File is the single-path form
	// some analyzers emit instead.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
	File  string   `json:"file,omitempty" yaml:"file,omitempty"`
}

// AffectedFiles returns Files, falling back to the singular File.
func (f Finding) AffectedFiles() []string {
	if len(f.Files) > 0 {
		return f.Files
	}
	if f.File != "" {
		return []string{f.File}
	}
	return nil
}

// AffectedCount is the number of files used for effort estimation. A finding
// without a Files list counts as one file.
func (f Finding) AffectedCount() int {
	if len(f.Files) > 0 {
		return len(f.Files)
	}
	return 1
}
