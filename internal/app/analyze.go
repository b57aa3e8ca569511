package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/output"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

var analyzeTop int

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Run every analyzer and show the top suggestions",
	Long: `Discover files under path, run the security, performance, documentation
and technical debt analyzers (or only the one selected with --focus), and
print a summary followed by the highest priority suggestions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 10, "Number of suggestions to show")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, rootArg(args))
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.engine.AnalyzeCodebase(cmd.Context())
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", s.root, err)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		data, err := report.JSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintln(w, output.Section("Analysis"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Root"), res.Root)
	fmt.Fprintf(w, " %s%d\n", output.StyleLabel.Render("Files analyzed"), res.FileCount)
	fmt.Fprintf(w, " %s%d\n", output.StyleLabel.Render("Findings"), res.Summary.Total)

	renderSummary(w, res.Summary)

	top := res.Suggestions
	if analyzeTop > 0 && len(top) > analyzeTop {
		top = top[:analyzeTop]
	}
	renderSuggestions(w, top, len(res.Suggestions))
	return nil
}

func renderSummary(w io.Writer, sum finding.Summary) {
	fmt.Fprintln(w, output.Section("Summary"))
	fmt.Fprintln(w)

	byCat := output.NewTable("Category", "Findings")
	for _, c := range finding.Categories {
		byCat.AddRow(string(c), strconv.Itoa(sum.ByCategory[string(c)]))
	}
	_ = byCat.Fprint(w)
	fmt.Fprintln(w)

	bySev := output.NewTable("Severity", "Findings")
	for _, sev := range []string{
		string(finding.SeverityCritical),
		string(finding.SeverityHigh),
		string(finding.SeverityMedium),
		string(finding.SeverityLow),
		finding.SeverityUnspecified,
	} {
		if n := sum.BySeverity[sev]; n > 0 {
			bySev.AddRow(output.Severity(sev), strconv.Itoa(n))
		}
	}
	if bySev.Len() > 0 {
		_ = bySev.Fprint(w)
	}
}

func renderSuggestions(w io.Writer, suggestions []suggest.Suggestion, total int) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, output.Section("Suggestions"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, " No suggestions. Nothing to improve was detected.")
		return
	}

	title := "Suggestions"
	if total > len(suggestions) {
		title = fmt.Sprintf("Suggestions (top %d of %d)", len(suggestions), total)
	}
	fmt.Fprintln(w, output.Section(title))
	fmt.Fprintln(w)

	for i, sg := range suggestions {
		fmt.Fprintf(w, " #%d %s %s\n", i+1, output.PriorityBar(sg.Priority, 10), output.StyleBold.Render(sg.Title))
		fmt.Fprintf(w, "    %s  |  Category: %s  |  Effort: %s  |  Files: %d\n",
			output.Severity(string(sg.Severity)), sg.Category, sg.Effort, len(sg.Files))
		if sg.Recommendation != "" {
			fmt.Fprintf(w, "    %s\n", output.StyleMuted.Render(sg.Recommendation))
		}
		fmt.Fprintln(w)
	}
}
