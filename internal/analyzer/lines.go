package analyzer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// LineRule flags files containing at least one line that matches Pattern.
type LineRule struct {
	Pattern        *regexp.Regexp
	Title          string
	Description    string
	Recommendation string
	Severity       finding.Severity
	Frequency      finding.Frequency
	FixCost        finding.FixCost

	// Impact, when empty, is derived from how many files matched.
	Impact finding.Impact

	// Exts restricts the rule to files with these extensions. Empty means
	// every file.
	Exts []string
}

// FileStats summarises one scanned file for FileRule checks.
type FileStats struct {
	Path         string
	Lines        int
	CommentLines int
}

// FileRule flags files whose statistics satisfy Match.
type FileRule struct {
	Match          func(FileStats) bool
	Title          string
	Description    string
	Recommendation string
	Severity       finding.Severity
	Frequency      finding.Frequency
	FixCost        finding.FixCost
	Impact         finding.Impact
}

// SetRule inspects the whole file list at once and may emit one finding.
type SetRule func(files []string) (finding.Finding, bool)

// lineAnalyzer reads each file once and evaluates every rule against it.
// Findings come out grouped per rule: line rules, then file rules, then set
// rules, each carrying the matching files in input order.
type lineAnalyzer struct {
	category  finding.Category
	lineRules []LineRule
	fileRules []FileRule
	setRules  []SetRule
}

func (a *lineAnalyzer) Category() finding.Category {
	return a.category
}

func (a *lineAnalyzer) Analyze(ctx context.Context, files []string) ([]finding.Finding, error) {
	lineHits := make([][]string, len(a.lineRules))
	fileHits := make([][]string, len(a.fileRules))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stats, matched, err := a.scanFile(path)
		if err != nil {
			// Unreadable files carry no evidence either way.
			continue
		}
		for i := range a.lineRules {
			if matched[i] {
				lineHits[i] = append(lineHits[i], path)
			}
		}
		for i, rule := range a.fileRules {
			if rule.Match(stats) {
				fileHits[i] = append(fileHits[i], path)
			}
		}
	}

	var findings []finding.Finding
	for i, rule := range a.lineRules {
		if len(lineHits[i]) == 0 {
			continue
		}
		findings = append(findings, finding.Finding{
			Category:       a.category,
			Title:          rule.Title,
			Description:    describe(rule.Description, len(lineHits[i])),
			Recommendation: rule.Recommendation,
			Severity:       rule.Severity,
			Impact:         impactOr(rule.Impact, len(lineHits[i])),
			Frequency:      rule.Frequency,
			FixCost:        rule.FixCost,
			Files:          lineHits[i],
		})
	}
	for i, rule := range a.fileRules {
		if len(fileHits[i]) == 0 {
			continue
		}
		findings = append(findings, finding.Finding{
			Category:       a.category,
			Title:          rule.Title,
			Description:    describe(rule.Description, len(fileHits[i])),
			Recommendation: rule.Recommendation,
			Severity:       rule.Severity,
			Impact:         impactOr(rule.Impact, len(fileHits[i])),
			Frequency:      rule.Frequency,
			FixCost:        rule.FixCost,
			Files:          fileHits[i],
		})
	}
	for _, rule := range a.setRules {
		if f, ok := rule(files); ok {
			f.Category = a.category
			findings = append(findings, f)
		}
	}

	return findings, nil
}

// scanFile counts lines and comment lines and records which line rules
// matched somewhere in the file. Scanning stops at the first line longer
// than maxLineBytes.
func (a *lineAnalyzer) scanFile(path string) (FileStats, []bool, error) {
	stats := FileStats{Path: path}
	matched := make([]bool, len(a.lineRules))

	f, err := os.Open(path)
	if err != nil {
		return stats, nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	applies := make([]bool, len(a.lineRules))
	for i, rule := range a.lineRules {
		applies[i] = appliesTo(rule.Exts, ext)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		stats.Lines++
		if isComment(line) {
			stats.CommentLines++
		}
		for i, rule := range a.lineRules {
			if applies[i] && !matched[i] && rule.Pattern.MatchString(line) {
				matched[i] = true
			}
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return stats, nil, err
	}
	// A line over the buffer limit ends the scan; what matched before it
	// still counts.
	return stats, matched, nil
}

const maxLineBytes = 1024 * 1024

func appliesTo(exts []string, ext string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

var commentPrefixes = []string{"//", "#", "/*", "*", "--", `"""`, "<!--"}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// impactOr returns impact, or derives one from the number of files hit.
func impactOr(impact finding.Impact, files int) finding.Impact {
	if impact != "" {
		return impact
	}
	switch {
	case files > 5:
		return finding.ImpactWidespread
	case files > 1:
		return finding.ImpactModerate
	default:
		return finding.ImpactLocalized
	}
}

func describe(desc string, files int) string {
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%s Found in %d %s.", desc, files, noun)
}

// Extension groups shared by the built-in rules.
var (
	codeExts = []string{
		".go", ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".py", ".rb",
		".rs", ".java", ".kt", ".swift", ".c", ".h", ".cpp", ".cc", ".hpp",
		".cs", ".php", ".scala", ".sh", ".vue", ".svelte",
	}
	configExts = []string{".json", ".yaml", ".yml", ".toml", ".ini", ".env", ".xml"}
)

func exts(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
