package suggest

import "github.com/blackwell-systems/ideation/internal/finding"

// Build turns ranked findings into suggestions, one per finding, in the
// order given.
func Build(ranked []Scored) []Suggestion {
	suggestions := make([]Suggestion, len(ranked))
	for i, r := range ranked {
		f := r.Finding
		suggestions[i] = Suggestion{
			Title:          f.Title,
			Category:       f.Category,
			Severity:       f.Severity,
			Impact:         f.Impact,
			Priority:       r.Priority,
			Description:    f.Description,
			Recommendation: f.Recommendation,
			Files:          f.AffectedFiles(),
			Effort:         EstimateEffort(f.FixCost, f.AffectedCount()),
		}
	}
	return suggestions
}

// Generate ranks findings and builds the resulting suggestions. Findings
// should already be flattened in category order.
func Generate(findings []finding.Finding) []Suggestion {
	return Build(Rank(findings))
}
