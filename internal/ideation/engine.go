// Package ideation orchestrates one analysis pass: discover files, run the
// selected analyzers, keep their findings per category, and rank the
// results into suggestions.
package ideation

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/ideation/internal/analyzer"
	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/scanner"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

// FocusAll selects every category.
const FocusAll = "all"

// Config is fixed for the lifetime of an Engine.
type Config struct {
	// Root is the directory to analyze. Empty means the working directory.
	Root string

	// Focus restricts analysis to one category. Empty, "all" and any
	// unrecognised value select all four categories.
	Focus string

	// MaxFiles caps discovery. Must be positive.
	MaxFiles int

	// IgnorePatterns are globs removed from discovery.
	IgnorePatterns []string

	// Concurrency bounds how many analyzers run at once. 1 or less runs
	// them one after another.
	Concurrency int
}

// Engine runs analyses and holds the findings of the most recent run of
// each category. An Engine is not safe for concurrent use.
type Engine struct {
	cfg       Config
	focus     finding.Category
	analyzers analyzer.Set
	logger    *zap.Logger

	store     finding.Store
	fileCount int
}

// New creates an engine. A nil analyzer set selects the built-in analyzers
// and a nil logger discards log output.
func New(cfg Config, analyzers analyzer.Set, logger *zap.Logger) (*Engine, error) {
	if cfg.MaxFiles <= 0 {
		return nil, fmt.Errorf("%w: max files must be positive, got %d", ErrInvalidConfig, cfg.MaxFiles)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.IgnorePatterns = append([]string(nil), cfg.IgnorePatterns...)
	if analyzers == nil {
		analyzers = analyzer.Builtin()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		cfg:       cfg,
		analyzers: analyzers,
		logger:    logger,
	}
	e.focus = e.resolveFocus(cfg.Focus)
	return e, nil
}

// resolveFocus maps the configured focus to a category, or "" for all.
func (e *Engine) resolveFocus(focus string) finding.Category {
	focus = strings.ToLower(strings.TrimSpace(focus))
	if focus == "" || focus == FocusAll {
		return ""
	}
	c, ok := finding.ParseCategory(focus)
	if !ok {
		e.logger.Warn("unknown focus, analyzing all categories", zap.String("focus", focus))
		return ""
	}
	return c
}

// Focus returns the selected category, or "" when all are selected.
func (e *Engine) Focus() finding.Category {
	return e.focus
}

// Root returns the directory being analyzed.
func (e *Engine) Root() string {
	return e.cfg.Root
}

// Findings returns a snapshot of the current store.
func (e *Engine) Findings() finding.Store {
	return e.store
}

// AnalyzeCodebase discovers files once and runs every selected analyzer,
// in category order or concurrently, replacing each selected bucket. On
// failure the buckets of categories before the failing one are kept and
// the error is returned.
func (e *Engine) AnalyzeCodebase(ctx context.Context) (*report.Results, error) {
	const op = "AnalyzeCodebase"

	files, err := e.discover()
	if err != nil {
		return nil, err
	}

	var selected []finding.Category
	for _, c := range finding.Categories {
		if e.focus == "" || e.focus == c {
			selected = append(selected, c)
		}
	}

	if e.cfg.Concurrency > 1 && len(selected) > 1 {
		err = e.dispatchConcurrent(ctx, op, selected, files)
	} else {
		err = e.dispatchSequential(ctx, op, selected, files)
	}
	if err != nil {
		return nil, err
	}

	return e.Results(), nil
}

// FindVulnerabilities runs the security analyzer. Nil files triggers a
// fresh discovery.
func (e *Engine) FindVulnerabilities(ctx context.Context, files []string) ([]finding.Finding, error) {
	return e.findCategory(ctx, "FindVulnerabilities", finding.CategorySecurity, files)
}

// FindPerformanceIssues runs the performance analyzer. Nil files triggers a
// fresh discovery.
func (e *Engine) FindPerformanceIssues(ctx context.Context, files []string) ([]finding.Finding, error) {
	return e.findCategory(ctx, "FindPerformanceIssues", finding.CategoryPerformance, files)
}

// FindDocGaps runs the documentation analyzer. Nil files triggers a fresh
// discovery.
func (e *Engine) FindDocGaps(ctx context.Context, files []string) ([]finding.Finding, error) {
	return e.findCategory(ctx, "FindDocGaps", finding.CategoryDocs, files)
}

// TrackTechDebt runs the technical debt analyzer. Nil files triggers a
// fresh discovery.
func (e *Engine) TrackTechDebt(ctx context.Context, files []string) ([]finding.Finding, error) {
	return e.findCategory(ctx, "TrackTechDebt", finding.CategoryDebt, files)
}

// Find runs the analyzer for an arbitrary category.
func (e *Engine) Find(ctx context.Context, c finding.Category, files []string) ([]finding.Finding, error) {
	return e.findCategory(ctx, "Find", c, files)
}

func (e *Engine) findCategory(ctx context.Context, op string, c finding.Category, files []string) ([]finding.Finding, error) {
	if files == nil {
		discovered, err := e.discover()
		if err != nil {
			return nil, err
		}
		files = discovered
	}

	store, err := Dispatch(ctx, e.store, e.analyzers, op, c, files, e.logger)
	if err != nil {
		return nil, err
	}
	e.store = store
	return e.store.Bucket(c), nil
}

// GenerateSuggestions ranks everything in the store. It is recomputed on
// every call.
func (e *Engine) GenerateSuggestions() []suggest.Suggestion {
	return suggest.Generate(e.store.Flatten())
}

// Summary counts the findings currently in the store.
func (e *Engine) Summary() finding.Summary {
	return finding.Summarize(e.store)
}

// Results assembles the current store, suggestions and summary.
func (e *Engine) Results() *report.Results {
	return &report.Results{
		RunID:       uuid.NewString(),
		Root:        e.cfg.Root,
		GeneratedAt: time.Now().UTC(),
		FileCount:   e.fileCount,
		Findings:    e.store,
		Suggestions: e.GenerateSuggestions(),
		Summary:     e.Summary(),
	}
}

// GenerateReport renders the current results in the given format. When
// outputPath is set the text is also written there; a failed write returns
// a *ReportWriteError and may leave a truncated file.
func (e *Engine) GenerateReport(outputPath, format string) (string, error) {
	renderer, err := report.ForFormat(format)
	if err != nil {
		return "", err
	}

	data, err := renderer.Render(e.Results())
	if err != nil {
		return "", fmt.Errorf("rendering %s report: %w", format, err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return "", &ReportWriteError{Path: outputPath, Err: err}
		}
		e.logger.Info("report written",
			zap.String("path", outputPath),
			zap.String("format", format),
			zap.Int("bytes", len(data)))
	}

	return string(data), nil
}

func (e *Engine) discover() ([]string, error) {
	files, err := scanner.Discover(e.cfg.Root, scanner.Options{
		MaxFiles:       e.cfg.MaxFiles,
		IgnorePatterns: e.cfg.IgnorePatterns,
	})
	if err != nil {
		return nil, err
	}
	e.fileCount = len(files)
	e.logger.Info("discovered files",
		zap.String("root", e.cfg.Root),
		zap.Int("count", len(files)),
		zap.Int("max_files", e.cfg.MaxFiles))
	return files, nil
}

func (e *Engine) dispatchSequential(ctx context.Context, op string, cats []finding.Category, files []string) error {
	for _, c := range cats {
		store, err := Dispatch(ctx, e.store, e.analyzers, op, c, files, e.logger)
		if err != nil {
			return err
		}
		e.store = store
	}
	return nil
}

// dispatchConcurrent fans out over cats and joins before touching the
// store. Buckets are committed in category order up to the first failure,
// which leaves the same store a sequential run would.
func (e *Engine) dispatchConcurrent(ctx context.Context, op string, cats []finding.Category, files []string) error {
	results := make([][]finding.Finding, len(cats))
	errs := make([]error, len(cats))

	var g errgroup.Group
	g.SetLimit(e.cfg.Concurrency)
	for i, c := range cats {
		g.Go(func() error {
			results[i], errs[i] = runAnalyzer(ctx, e.analyzers, op, c, files, e.logger)
			return errs[i]
		})
	}
	_ = g.Wait()

	for i, c := range cats {
		if errs[i] != nil {
			return errs[i]
		}
		e.store = e.store.Replace(c, results[i])
	}
	return nil
}

// Dispatch runs the analyzer registered for c over files and returns store
// with c's bucket replaced by the result. store itself is never modified,
// and on error it is the caller's copy that remains current.
func Dispatch(
	ctx context.Context,
	store finding.Store,
	analyzers analyzer.Set,
	op string,
	c finding.Category,
	files []string,
	logger *zap.Logger,
) (finding.Store, error) {
	findings, err := runAnalyzer(ctx, analyzers, op, c, files, logger)
	if err != nil {
		return store, err
	}
	return store.Replace(c, findings), nil
}

func runAnalyzer(
	ctx context.Context,
	analyzers analyzer.Set,
	op string,
	c finding.Category,
	files []string,
	logger *zap.Logger,
) ([]finding.Finding, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	a, err := analyzers.Lookup(c)
	if err != nil {
		return nil, &AnalyzerError{Op: op, Category: c, Err: err}
	}

	start := time.Now()
	findings, err := a.Analyze(ctx, files)
	if err != nil {
		logger.Error("analyzer failed",
			zap.String("op", op),
			zap.String("category", string(c)),
			zap.Error(err))
		return nil, &AnalyzerError{Op: op, Category: c, Err: err}
	}

	logger.Debug("analyzer finished",
		zap.String("op", op),
		zap.String("category", string(c)),
		zap.Int("files", len(files)),
		zap.Int("findings", len(findings)),
		zap.Duration("took", time.Since(start)))
	return findings, nil
}
