package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/output"
	"github.com/blackwell-systems/ideation/internal/report"
)

var (
	reportFormat string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Write a markdown, JSON or YAML report",
	Long: `Analyze path and render the findings, ranked suggestions and summary
as a report. Without --output the report is printed; markdown printed to a
terminal is styled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: markdown, json or yaml (default from config: markdown)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, rootArg(args))
	if err != nil {
		return err
	}
	defer s.close()

	format := reportFormat
	if format == "" {
		format = s.cfg.Report.Format
	}
	if flagJSON && !cmd.Flags().Changed("format") {
		format = report.FormatJSON
	}
	if _, err := report.ForFormat(format); err != nil {
		return err
	}

	res, err := s.engine.AnalyzeCodebase(cmd.Context())
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", s.root, err)
	}

	w := cmd.OutOrStdout()

	if reportOutput == "" && isMarkdown(format) && !output.IsNoColor() && output.IsTerminal(os.Stdout) {
		styled, err := report.Terminal(res, s.cfg.Output.Width)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		_, err = fmt.Fprint(w, styled)
		return err
	}

	text, err := s.engine.GenerateReport(reportOutput, format)
	if err != nil {
		return err
	}
	if reportOutput != "" {
		fmt.Fprintf(w, "Report written to %s\n", reportOutput)
		return nil
	}
	_, err = fmt.Fprint(w, text)
	return err
}

func isMarkdown(format string) bool {
	switch strings.ToLower(format) {
	case "", report.FormatMarkdown, "md":
		return true
	}
	return false
}
