package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/ideation"
	"github.com/blackwell-systems/ideation/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find <security|performance|docs|debt> [path]",
	Short: "Run a single category analyzer",
	Long: `Discover files under path and run only the analyzer for the given
category, printing every finding it reports.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: categoryNames(),
	RunE:      runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

// finders maps each category to the engine operation that analyzes it.
var finders = map[finding.Category]func(*ideation.Engine, context.Context, []string) ([]finding.Finding, error){
	finding.CategorySecurity:    (*ideation.Engine).FindVulnerabilities,
	finding.CategoryPerformance: (*ideation.Engine).FindPerformanceIssues,
	finding.CategoryDocs:        (*ideation.Engine).FindDocGaps,
	finding.CategoryDebt:        (*ideation.Engine).TrackTechDebt,
}

func runFind(cmd *cobra.Command, args []string) error {
	category, ok := finding.ParseCategory(strings.ToLower(args[0]))
	if !ok {
		return fmt.Errorf("unknown category %q (want one of %s)", args[0], categoryList())
	}

	s, err := newSession(cmd, rootArg(args[1:]))
	if err != nil {
		return err
	}
	defer s.close()

	findings, err := finders[category](s.engine, cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("finding %s issues in %s: %w", category, s.root, err)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		if findings == nil {
			findings = []finding.Finding{}
		}
		return writeJSON(w, findings)
	}

	renderFindings(w, s.root, category, findings)
	return nil
}

func renderFindings(w io.Writer, root string, category finding.Category, findings []finding.Finding) {
	fmt.Fprintln(w, output.Section(fmt.Sprintf("%s findings (%d)", category, len(findings))))
	fmt.Fprintln(w)
	if len(findings) == 0 {
		fmt.Fprintln(w, " Nothing found.")
		return
	}

	tbl := output.NewTable("#", "Severity", "Fix cost", "Files", "Title")
	for i, f := range findings {
		tbl.AddRow(
			strconv.Itoa(i+1),
			output.Severity(string(f.Severity)),
			string(f.FixCost),
			strconv.Itoa(len(f.AffectedFiles())),
			f.Title,
		)
	}
	_ = tbl.Fprint(w)

	for i, f := range findings {
		fmt.Fprintf(w, "\n #%d %s\n", i+1, output.StyleBold.Render(f.Title))
		if f.Description != "" {
			fmt.Fprintf(w, "    %s\n", f.Description)
		}
		for _, p := range f.AffectedFiles() {
			fmt.Fprintf(w, "    %s\n", output.StyleMuted.Render(relPath(root, p)))
		}
	}
}

func categoryNames() []string {
	names := make([]string, len(finding.Categories))
	for i, c := range finding.Categories {
		names[i] = string(c)
	}
	return names
}

func categoryList() string {
	return strings.Join(categoryNames(), ", ")
}

func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}
