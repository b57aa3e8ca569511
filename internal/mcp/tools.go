package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

// FindArgs are the arguments of find_issues.
type FindArgs struct {
	Category string   `json:"category"`
	Files    []string `json:"files,omitempty"`
}

// SuggestArgs are the arguments of generate_suggestions.
type SuggestArgs struct {
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
}

// ReportArgs are the arguments of generate_report.
type ReportArgs struct {
	Format     string `json:"format,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

// ReportResult is returned by generate_report.
type ReportResult struct {
	Format  string `json:"format"`
	Path    string `json:"path,omitempty"`
	Content string `json:"content"`
}

var noArgsSchema = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)

var findSchema = json.RawMessage(`{"type":"object","properties":{` +
	`"category":{"type":"string","enum":["security","performance","docs","debt"]},` +
	`"files":{"type":"array","items":{"type":"string"},"description":"Files to analyze; omit to rediscover"}},` +
	`"required":["category"],"additionalProperties":false}`)

var suggestSchema = json.RawMessage(`{"type":"object","properties":{` +
	`"limit":{"type":"integer","description":"Maximum suggestions to return (0 for all)"},` +
	`"category":{"type":"string","enum":["security","performance","docs","debt"]}},` +
	`"additionalProperties":false}`)

var reportSchema = json.RawMessage(`{"type":"object","properties":{` +
	`"format":{"type":"string","enum":["markdown","json","yaml"]},` +
	`"output_path":{"type":"string","description":"Also write the report to this file, relative to the analyzed root; paths outside it are refused"}},` +
	`"additionalProperties":false}`)

// addTools registers the engine operations on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "analyze_codebase",
		Description: "Discover files and run every selected analyzer, returning findings, ranked suggestions and a summary.",
		InputSchema: noArgsSchema,
		Handler:     s.handleAnalyze,
	})
	s.registerTool(toolDef{
		Name:        "find_issues",
		Description: "Run one category analyzer and replace that category's findings.",
		InputSchema: findSchema,
		Handler:     s.handleFind,
	})
	s.registerTool(toolDef{
		Name:        "generate_suggestions",
		Description: "Rank the current findings into suggestions with priority and effort.",
		InputSchema: suggestSchema,
		Handler:     s.handleSuggest,
	})
	s.registerTool(toolDef{
		Name:        "get_summary",
		Description: "Count the current findings by category and severity.",
		InputSchema: noArgsSchema,
		Handler:     s.handleSummary,
	})
	s.registerTool(toolDef{
		Name:        "generate_report",
		Description: "Render the current findings as a markdown, JSON or YAML report.",
		InputSchema: reportSchema,
		Handler:     s.handleReport,
	})
}

func (s *Server) handleAnalyze(ctx context.Context, _ json.RawMessage) (any, error) {
	return s.engine.AnalyzeCodebase(ctx)
}

func (s *Server) handleFind(ctx context.Context, args json.RawMessage) (any, error) {
	var a FindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	c, ok := finding.ParseCategory(strings.ToLower(a.Category))
	if !ok {
		return nil, fmt.Errorf("unknown category %q", a.Category)
	}
	findings, err := s.engine.Find(ctx, c, a.Files)
	if err != nil {
		return nil, err
	}
	if findings == nil {
		findings = []finding.Finding{}
	}
	return findings, nil
}

func (s *Server) handleSuggest(_ context.Context, args json.RawMessage) (any, error) {
	var a SuggestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	var category finding.Category
	if a.Category != "" {
		c, ok := finding.ParseCategory(strings.ToLower(a.Category))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", a.Category)
		}
		category = c
	}

	out := []suggest.Suggestion{}
	for _, sg := range s.engine.GenerateSuggestions() {
		if category != "" && sg.Category != category {
			continue
		}
		out = append(out, sg)
		if a.Limit > 0 && len(out) == a.Limit {
			break
		}
	}
	return out, nil
}

func (s *Server) handleSummary(_ context.Context, _ json.RawMessage) (any, error) {
	return s.engine.Summary(), nil
}

func (s *Server) handleReport(_ context.Context, args json.RawMessage) (any, error) {
	var a ReportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Format == "" {
		a.Format = report.FormatMarkdown
	}
	dest, err := s.reportPath(a.OutputPath)
	if err != nil {
		return nil, err
	}
	text, err := s.engine.GenerateReport(dest, a.Format)
	if err != nil {
		return nil, err
	}
	return ReportResult{Format: a.Format, Path: dest, Content: text}, nil
}

// reportPath resolves a client-supplied output path against the analyzed
// root. Paths that land outside the root are refused.
func (s *Server) reportPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	root, err := filepath.Abs(s.engine.Root())
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("output_path %q is outside %s", p, root)
	}
	return p, nil
}
