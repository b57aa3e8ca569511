// Package analyzer defines the contract category detectors satisfy and
// ships a line-pattern detector for each of the four categories.
package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// Analyzer inspects a list of files and reports findings for one category.
// Implementations must not retain or modify the files slice.
type Analyzer interface {
	// Category returns the category every emitted finding belongs to.
	Category() finding.Category

	// Analyze examines files and returns findings in emission order.
	Analyze(ctx context.Context, files []string) ([]finding.Finding, error)
}

// ErrNoAnalyzer is returned by Lookup for a category with no analyzer.
var ErrNoAnalyzer = errors.New("no analyzer registered")

// Set maps each category to the analyzer responsible for it.
type Set map[finding.Category]Analyzer

// NewSet builds a Set keyed by each analyzer's category. A later analyzer
// for the same category replaces an earlier one.
func NewSet(analyzers ...Analyzer) Set {
	s := make(Set, len(analyzers))
	for _, a := range analyzers {
		s[a.Category()] = a
	}
	return s
}

// Builtin returns the built-in analyzers for all four categories.
func Builtin() Set {
	return NewSet(
		NewSecurity(),
		NewPerformance(),
		NewDocs(),
		NewDebt(),
	)
}

// Lookup returns the analyzer registered for c.
func (s Set) Lookup(c finding.Category) (Analyzer, error) {
	a, ok := s[c]
	if !ok || a == nil {
		return nil, fmt.Errorf("%w for category %q", ErrNoAnalyzer, c)
	}
	return a, nil
}
