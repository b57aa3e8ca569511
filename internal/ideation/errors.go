package ideation

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/ideation/internal/analyzer"
	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/scanner"
)

// DiscoveryError reports a missing or unreadable analysis root.
type DiscoveryError = scanner.DiscoveryError

// ErrInvalidConfig is returned by New for unusable configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrNoAnalyzer is wrapped by an AnalyzerError when a selected category
// has nothing registered for it.
var ErrNoAnalyzer = analyzer.ErrNoAnalyzer

// AnalyzerError records which operation and category an analyzer failed
// in. Unwrap returns the analyzer's own error untouched.
type AnalyzerError struct {
	Op       string
	Category finding.Category
	Err      error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("%s: %s analyzer: %v", e.Op, e.Category, e.Err)
}

func (e *AnalyzerError) Unwrap() error {
	return e.Err
}

// ReportWriteError reports a rendered report that could not be written.
type ReportWriteError struct {
	Path string
	Err  error
}

func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("writing report to %s: %v", e.Path, e.Err)
}

func (e *ReportWriteError) Unwrap() error {
	return e.Err
}
