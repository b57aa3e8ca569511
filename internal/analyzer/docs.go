package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// undocumentedMinLines is the size above which a source file with no
// comments at all is reported.
const undocumentedMinLines = 50

// NewDocs returns the documentation analyzer.
func NewDocs() Analyzer {
	return &lineAnalyzer{
		category: finding.CategoryDocs,
		fileRules: []FileRule{
			{
				Match: func(s FileStats) bool {
					return isCode(s.Path) && s.Lines >= undocumentedMinLines && s.CommentLines == 0
				},
				Title:          "Source files without comments",
				Description:    "Large source files carry no comments, so intent and invariants live only in their authors' heads.",
				Recommendation: "Add package and function level comments describing purpose, inputs and failure modes.",
				Severity:       finding.SeverityLow,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostMedium,
			},
		},
		setRules: []SetRule{missingReadme},
	}
}

// missingReadme reports a file list that contains code but no README.
func missingReadme(files []string) (finding.Finding, bool) {
	hasCode := false
	for _, f := range files {
		base := strings.ToLower(filepath.Base(f))
		if strings.HasPrefix(base, "readme") {
			return finding.Finding{}, false
		}
		if isCode(f) {
			hasCode = true
		}
	}
	if !hasCode {
		return finding.Finding{}, false
	}
	return finding.Finding{
		Title:          "Missing README",
		Description:    "The project has no README, so newcomers have no entry point for setup, usage or architecture.",
		Recommendation: "Add a README.md covering what the project does, how to build and run it, and where to start reading.",
		Severity:       finding.SeverityMedium,
		Impact:         finding.ImpactWidespread,
		Frequency:      finding.FrequencyAlways,
		FixCost:        finding.FixCostLow,
		File:           "README.md",
	}, true
}

func isCode(path string) bool {
	return appliesTo(codeExts, strings.ToLower(filepath.Ext(path)))
}
