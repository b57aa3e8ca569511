// Package report renders analysis results as markdown, JSON or YAML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

// Supported output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists the accepted format names.
var Formats = []string{FormatMarkdown, FormatJSON, FormatYAML}

// Results is everything one analysis run produced.
type Results struct {
	RunID       string               `json:"run_id" yaml:"run_id"`
	Root        string               `json:"root" yaml:"root"`
	GeneratedAt time.Time            `json:"generated_at" yaml:"generated_at"`
	FileCount   int                  `json:"file_count" yaml:"file_count"`
	Findings    finding.Store        `json:"findings" yaml:"findings"`
	Suggestions []suggest.Suggestion `json:"suggestions" yaml:"suggestions"`
	Summary     finding.Summary      `json:"summary" yaml:"summary"`
}

// Renderer turns results into text.
type Renderer interface {
	Render(r *Results) ([]byte, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(r *Results) ([]byte, error)

// Render calls f(r).
func (f RendererFunc) Render(r *Results) ([]byte, error) {
	return f(r)
}

// ForFormat returns the renderer for a format name. Names are case
// insensitive and "md" is accepted for markdown.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatMarkdown, "md", "":
		return RendererFunc(Markdown), nil
	case FormatJSON:
		return RendererFunc(JSON), nil
	case FormatYAML, "yml":
		return RendererFunc(YAML), nil
	}
	return nil, fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats, ", "))
}
