package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// topSuggestions is how many suggestions get a detailed section.
const topSuggestions = 10

var severityOrder = []string{
	string(finding.SeverityCritical),
	string(finding.SeverityHigh),
	string(finding.SeverityMedium),
	string(finding.SeverityLow),
	finding.SeverityUnspecified,
}

var categoryTitles = map[finding.Category]string{
	finding.CategorySecurity:    "Security",
	finding.CategoryPerformance: "Performance",
	finding.CategoryDocs:        "Documentation",
	finding.CategoryDebt:        "Technical Debt",
}

// Markdown renders results as a human-readable markdown document.
func Markdown(r *Results) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# Codebase Improvement Report\n\n")
	fmt.Fprintf(&sb, "_Generated %s (run %s)_\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.RunID)
	fmt.Fprintf(&sb, "**Root:** `%s`  \n**Files analyzed:** %d  \n**Findings:** %d\n\n",
		r.Root, r.FileCount, r.Summary.Total)

	writeSummary(&sb, r)
	writeSuggestions(&sb, r)
	writeFindings(&sb, r)

	return []byte(sb.String()), nil
}

func writeSummary(sb *strings.Builder, r *Results) {
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Category | Findings |\n|---|---:|\n")
	for _, c := range finding.Categories {
		fmt.Fprintf(sb, "| %s | %d |\n", categoryTitles[c], r.Summary.ByCategory[string(c)])
	}
	sb.WriteString("\n| Severity | Findings |\n|---|---:|\n")
	for _, sev := range severityOrder {
		if n := r.Summary.BySeverity[sev]; n > 0 {
			fmt.Fprintf(sb, "| %s | %d |\n", sev, n)
		}
	}
	sb.WriteString("\n")
}

func writeSuggestions(sb *strings.Builder, r *Results) {
	sb.WriteString("## Suggestions\n\n")
	if len(r.Suggestions) == 0 {
		sb.WriteString("No suggestions. Nothing to improve was detected.\n\n")
		return
	}

	sb.WriteString("| # | Priority | Category | Severity | Suggestion | Effort |\n")
	sb.WriteString("|---:|---:|---|---|---|---|\n")
	for i, s := range r.Suggestions {
		fmt.Fprintf(sb, "| %d | %.2f | %s | %s | %s | %s |\n",
			i+1, s.Priority, s.Category, orDash(string(s.Severity)), cell(s.Title), s.Effort)
	}
	sb.WriteString("\n")

	n := len(r.Suggestions)
	if n > topSuggestions {
		n = topSuggestions
	}
	for i, s := range r.Suggestions[:n] {
		fmt.Fprintf(sb, "### %d. %s\n\n", i+1, s.Title)
		fmt.Fprintf(sb, "- **Category:** %s\n- **Priority:** %.2f\n- **Effort:** %s\n", s.Category, s.Priority, s.Effort)
		if s.Impact != "" {
			fmt.Fprintf(sb, "- **Impact:** %s\n", s.Impact)
		}
		sb.WriteString("\n")
		if s.Description != "" {
			sb.WriteString(s.Description + "\n\n")
		}
		if s.Recommendation != "" {
			fmt.Fprintf(sb, "**Recommendation:** %s\n\n", s.Recommendation)
		}
		writeFiles(sb, r.Root, s.Files)
	}
}

func writeFindings(sb *strings.Builder, r *Results) {
	sb.WriteString("## Findings by Category\n\n")
	for _, c := range finding.Categories {
		bucket := r.Findings.Bucket(c)
		fmt.Fprintf(sb, "### %s (%d)\n\n", categoryTitles[c], len(bucket))
		if len(bucket) == 0 {
			sb.WriteString("_None._\n\n")
			continue
		}
		for _, f := range bucket {
			fmt.Fprintf(sb, "- **%s** (%s, %d file(s))\n", f.Title, orDash(string(f.Severity)), len(f.AffectedFiles()))
		}
		sb.WriteString("\n")
	}
}

func writeFiles(sb *strings.Builder, root string, files []string) {
	if len(files) == 0 {
		return
	}
	sb.WriteString("Files:\n\n")
	for _, f := range files {
		fmt.Fprintf(sb, "- `%s`\n", relTo(root, f))
	}
	sb.WriteString("\n")
}

// relTo shortens p to a root-relative path when it lives under root.
func relTo(root, p string) string {
	if root == "" {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}

// cell escapes text for use inside a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
