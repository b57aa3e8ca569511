package suggest

import (
	"sort"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// Weight tables. Missing or unrecognised values take the default weight
// named next to each table.
var (
	// default 1
	severityWeights = map[finding.Severity]float64{
		finding.SeverityCritical: 4,
		finding.SeverityHigh:     3,
		finding.SeverityMedium:   2,
		finding.SeverityLow:      1,
	}

	// default 1
	impactWeights = map[finding.Impact]float64{
		finding.ImpactWidespread: 3,
		finding.ImpactModerate:   2,
		finding.ImpactLocalized:  1,
	}

	// default 1
	frequencyWeights = map[finding.Frequency]float64{
		finding.FrequencyAlways: 3,
		finding.FrequencyOften:  2,
		finding.FrequencyRare:   1,
	}

	// default 2 (medium)
	costWeights = map[finding.FixCost]float64{
		finding.FixCostHigh:   3,
		finding.FixCostMedium: 2,
		finding.FixCostLow:    1,
	}
)

func weight[K comparable](table map[K]float64, key K, fallback float64) float64 {
	if w, ok := table[key]; ok {
		return w
	}
	return fallback
}

// Score computes the priority of a finding.
// Formula: (severity * impact * frequency) / fixCost
func Score(f finding.Finding) float64 {
	sev := weight(severityWeights, f.Severity, 1)
	imp := weight(impactWeights, f.Impact, 1)
	freq := weight(frequencyWeights, f.Frequency, 1)
	cost := weight(costWeights, f.FixCost, 2)
	return (sev * imp * freq) / cost
}

// Rank scores findings and sorts them by priority in descending order.
// Equal priorities keep their input order, so callers that pass findings
// flattened in category order get a deterministic tie-break.
func Rank(findings []finding.Finding) []Scored {
	scored := make([]Scored, len(findings))
	for i, f := range findings {
		scored[i] = Scored{Finding: f, Priority: Score(f)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Priority > scored[j].Priority
	})
	return scored
}
