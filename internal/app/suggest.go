package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

var (
	suggestLimit    int
	suggestCategory string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [path]",
	Short: "List ranked improvement suggestions",
	Long: `Analyze path and print every finding as a suggestion, ranked by
priority: severity x impact x frequency divided by fix cost. Equal
priorities keep security, performance, docs, debt order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum number of suggestions to show (0 for all)")
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category (security, performance, docs, debt)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	var category finding.Category
	if suggestCategory != "" {
		c, ok := finding.ParseCategory(suggestCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (want one of %s)", suggestCategory, categoryList())
		}
		category = c
	}

	s, err := newSession(cmd, rootArg(args))
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.engine.AnalyzeCodebase(cmd.Context())
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", s.root, err)
	}

	suggestions := res.Suggestions
	if category != "" {
		suggestions = filterByCategory(suggestions, category)
	}
	total := len(suggestions)
	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		if suggestions == nil {
			suggestions = []suggest.Suggestion{}
		}
		return writeJSON(w, suggestions)
	}

	renderSuggestions(w, suggestions, total)
	return nil
}

func filterByCategory(suggestions []suggest.Suggestion, category finding.Category) []suggest.Suggestion {
	var filtered []suggest.Suggestion
	for _, s := range suggestions {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
