package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/analyzer"
	"github.com/blackwell-systems/ideation/internal/config"
	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/output"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/scanner"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [path]",
	Short: "Check whether configuration and the target path are usable",
	Long: `Run a series of health checks against the resolved configuration and
the path to analyze. Prints a pass/fail line for each check and a summary
of how many checks passed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	root := rootArg(args)
	cfg, err := config.Load(flagConfig, root)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)

	checks := []doctorCheck{
		checkConfigFile(cfg),
		checkRoot(root),
		checkMaxFiles(cfg.MaxFiles),
		checkIgnorePatterns(cfg.IgnorePatterns),
		checkReportFormat(cfg.Report.Format),
		checkAnalyzers(analyzer.Builtin()),
		checkDiscovery(root, cfg),
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		})
	}

	fmt.Fprintln(w, output.Section("Doctor"))
	fmt.Fprintln(w)

	for _, c := range checks {
		renderDoctorCheck(w, c)
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(w, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(w, " %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(w io.Writer, c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Fprintf(w, "  %s  %-30s %s\n", indicator, label, detail)
}

// checkConfigFile reports which config file applied. Running on defaults
// is not a failure.
func checkConfigFile(cfg *config.Config) doctorCheck {
	if cfg.File == "" {
		return doctorCheck{Name: "Config file", Passed: true, Message: "none found, using defaults"}
	}
	return doctorCheck{Name: "Config file", Passed: true, Message: cfg.File}
}

func checkRoot(root string) doctorCheck {
	info, err := os.Stat(root)
	if err != nil {
		return doctorCheck{Name: "Target directory", Message: fmt.Sprintf("not found: %s", root)}
	}
	if !info.IsDir() {
		return doctorCheck{Name: "Target directory", Message: fmt.Sprintf("path exists but is not a directory: %s", root)}
	}
	return doctorCheck{Name: "Target directory", Passed: true, Message: root}
}

func checkMaxFiles(n int) doctorCheck {
	if n <= 0 {
		return doctorCheck{Name: "Max files", Message: fmt.Sprintf("must be positive, got %d", n)}
	}
	return doctorCheck{Name: "Max files", Passed: true, Message: fmt.Sprintf("%d", n)}
}

func checkIgnorePatterns(patterns []string) doctorCheck {
	if err := scanner.ValidatePatterns(patterns); err != nil {
		return doctorCheck{Name: "Ignore patterns", Message: err.Error()}
	}
	return doctorCheck{Name: "Ignore patterns", Passed: true, Message: fmt.Sprintf("%d valid", len(patterns))}
}

func checkReportFormat(format string) doctorCheck {
	if _, err := report.ForFormat(format); err != nil {
		return doctorCheck{Name: "Report format", Message: err.Error()}
	}
	return doctorCheck{Name: "Report format", Passed: true, Message: format}
}

func checkAnalyzers(set analyzer.Set) doctorCheck {
	var missing []string
	for _, c := range finding.Categories {
		if _, err := set.Lookup(c); err != nil {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return doctorCheck{Name: "Analyzers", Message: fmt.Sprintf("missing: %v", missing)}
	}
	return doctorCheck{Name: "Analyzers", Passed: true, Message: categoryList()}
}

// checkDiscovery runs discovery once and flags an empty or truncated result.
func checkDiscovery(root string, cfg *config.Config) doctorCheck {
	files, err := scanner.Discover(root, scanner.Options{
		MaxFiles:       cfg.MaxFiles,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return doctorCheck{Name: "File discovery", Message: err.Error()}
	}
	switch {
	case len(files) == 0:
		return doctorCheck{Name: "File discovery", Message: "no files to analyze"}
	case cfg.MaxFiles > 0 && len(files) >= cfg.MaxFiles:
		return doctorCheck{
			Name:    "File discovery",
			Passed:  true,
			Message: fmt.Sprintf("%d files (limit reached, raise max_files to cover more)", len(files)),
		}
	}
	return doctorCheck{Name: "File discovery", Passed: true, Message: fmt.Sprintf("%d files", len(files))}
}
