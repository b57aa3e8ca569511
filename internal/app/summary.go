package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [path]",
	Short: "Count findings by category and severity",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, rootArg(args))
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.engine.AnalyzeCodebase(cmd.Context()); err != nil {
		return fmt.Errorf("analyzing %s: %w", s.root, err)
	}
	sum := s.engine.Summary()

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, sum)
	}

	fmt.Fprintf(w, " Total findings: %d\n", sum.Total)
	renderSummary(w, sum)
	return nil
}
