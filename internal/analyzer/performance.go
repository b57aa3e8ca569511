package analyzer

import (
	"regexp"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// NewPerformance returns the performance analyzer. It looks for blocking
// I/O on hot paths, wasteful copies and unbounded queries.
func NewPerformance() Analyzer {
	return &lineAnalyzer{
		category: finding.CategoryPerformance,
		lineRules: []LineRule{
			{
				Pattern:        regexp.MustCompile(`\b(readFileSync|writeFileSync|existsSync|readdirSync|statSync|execSync)\s*\(`),
				Title:          "Synchronous filesystem calls",
				Description:    "Synchronous fs and child_process calls block the event loop for the full duration of the I/O.",
				Recommendation: "Switch to the promise-based APIs and await them, or move the work off the request path.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`JSON\.parse\(\s*JSON\.stringify\(`),
				Title:          "Deep clone through JSON round-trip",
				Description:    "Serialising and re-parsing an object to copy it is slow and silently drops dates, maps and undefined values.",
				Recommendation: "Use structuredClone or copy only the fields that need copying.",
				Severity:       finding.SeverityLow,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`(?i)\bSELECT\s+\*\s+FROM\b`),
				Title:          "Unbounded SELECT * queries",
				Description:    "Selecting every column transfers more data than needed and breaks when the schema grows.",
				Recommendation: "List the required columns explicitly and add LIMIT or pagination where results can grow.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostMedium,
				Exts:           exts(codeExts, []string{".sql"}),
			},
			{
				Pattern:        regexp.MustCompile(`\btime\.Sleep\(|\bThread\.sleep\(|\btime\.sleep\(`),
				Title:          "Fixed sleeps in code paths",
				Description:    "Hard-coded sleeps add latency on every call and usually paper over missing synchronisation.",
				Recommendation: "Wait on the actual condition with a channel, condition variable or backoff with a deadline.",
				Severity:       finding.SeverityLow,
				Frequency:      finding.FrequencyRare,
				FixCost:        finding.FixCostMedium,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`for\s*\(.*\)\s*\{?\s*await\b|\.forEach\(\s*async\b`),
				Title:          "Sequential awaits inside loops",
				Description:    "Awaiting inside a loop serialises independent async work that could run concurrently.",
				Recommendation: "Collect the promises and await them together with Promise.all, bounded if needed.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
		},
	}
}
