// Package app contains the Cobra command tree for ideation.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string

	flagFocus       string
	flagMaxFiles    int
	flagIgnore      []string
	flagConcurrency int
)

var rootCmd = &cobra.Command{
	Use:   "ideation",
	Short: "Find and rank improvement opportunities in a codebase",
	Long: `ideation scans a source tree for security, performance, documentation
and technical debt issues, then ranks everything it found into a single
prioritized list of suggestions with effort estimates.

Commands take an optional path argument and default to the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "ideation", appVersion)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use a subcommand:")
		fmt.Fprintln(w, "  analyze   Run every analyzer and show the top suggestions")
		fmt.Fprintln(w, "  find      Run a single category analyzer")
		fmt.Fprintln(w, "  suggest   List ranked improvement suggestions")
		fmt.Fprintln(w, "  report    Write a markdown, JSON or YAML report")
		fmt.Fprintln(w, "  summary   Count findings by category and severity")
		fmt.Fprintln(w, "  doctor    Check configuration and the target path")
		fmt.Fprintln(w, "  mcp       Serve the engine over MCP stdio")
		return nil
	},
}

// Execute is the entry point called from main. An interrupt cancels the
// running analysis.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: .ideation.yaml in the path, then ~/.config/ideation/config.yaml)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	pf.StringVar(&flagFocus, "focus", "", "Restrict analysis to one category (security, performance, docs, debt, all)")
	pf.IntVar(&flagMaxFiles, "max-files", 0, "Maximum number of files to analyze (default from config: 500)")
	pf.StringSliceVar(&flagIgnore, "ignore", nil, "Glob to exclude from discovery; repeatable, replaces configured patterns")
	pf.IntVar(&flagConcurrency, "concurrency", 0, "Analyzers run at once, 1 for sequential (default from config: 4)")
}
