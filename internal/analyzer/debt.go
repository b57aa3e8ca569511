package analyzer

import (
	"regexp"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// oversizedMinLines is the line count above which a file is reported as
// too large to maintain comfortably.
const oversizedMinLines = 800

// NewDebt returns the technical debt analyzer. Comment markers follow the
// usual SATD conventions: FIXME/BUG are defects, HACK/XXX are design debt,
// TODO is deferred work.
func NewDebt() Analyzer {
	return &lineAnalyzer{
		category: finding.CategoryDebt,
		lineRules: []LineRule{
			{
				Pattern:        regexp.MustCompile(`\b(FIXME|BUG)\b[:(]?`),
				Title:          "Known defects marked FIXME",
				Description:    "Comments flag code that is known to be wrong but still ships.",
				Recommendation: "Turn each FIXME into a tracked issue and fix or delete the affected path.",
				Severity:       finding.SeverityHigh,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostMedium,
			},
			{
				Pattern:        regexp.MustCompile(`\b(HACK|XXX|KLUDGE)\b`),
				Title:          "Workarounds marked HACK",
				Description:    "Comments admit to shortcuts that bypass the intended design.",
				Recommendation: "Replace the workaround with the proper abstraction, or document why it must stay.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostMedium,
			},
			{
				Pattern:        regexp.MustCompile(`\bTODO\b`),
				Title:          "Outstanding TODO comments",
				Description:    "Deferred work is recorded only in comments where nobody schedules it.",
				Recommendation: "Move TODOs into the issue tracker and remove the ones that no longer apply.",
				Severity:       finding.SeverityLow,
				Frequency:      finding.FrequencyRare,
				FixCost:        finding.FixCostLow,
			},
		},
		fileRules: []FileRule{
			{
				Match: func(s FileStats) bool {
					return isCode(s.Path) && s.Lines >= oversizedMinLines
				},
				Title:          "Oversized source files",
				Description:    "Very long files mix responsibilities and are hard to review and test.",
				Recommendation: "Split the files along their responsibilities into smaller units.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostHigh,
			},
		},
	}
}
