package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/ideation"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

// newTestServer creates a Server over a small repo with one hard-coded
// secret and two debt markers.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"README.md": "# demo\n",
		"main.py":   "password = 'correcthorse'\n# TODO: tidy\n# FIXME: broken\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(body), 0o644))
	}

	engine, err := ideation.New(ideation.Config{Root: root, MaxFiles: 100}, nil, nil)
	require.NoError(t, err)
	return NewServer(engine, "test", nil), root
}

// callTool invokes the named tool handler and returns the raw JSON result.
func callTool(t *testing.T, s *Server, name string, args string) []byte {
	t.Helper()
	res := s.callTool(context.Background(), toolsCallParams{Name: name, Arguments: json.RawMessage(args)})
	require.False(t, res.IsError, "tool %s failed: %+v", name, res.Content)
	require.Len(t, res.Content, 1)
	return []byte(res.Content[0].Text)
}

func TestAddTools_Registered(t *testing.T) {
	s, _ := newTestServer(t)
	var names []string
	for _, tool := range s.tools {
		names = append(names, tool.Name)
		assert.True(t, json.Valid(tool.InputSchema), "%s schema", tool.Name)
	}
	assert.Equal(t, []string{
		"analyze_codebase", "find_issues", "generate_suggestions", "get_summary", "generate_report",
	}, names)
}

func TestAnalyzeCodebaseTool(t *testing.T) {
	s, root := newTestServer(t)

	var res report.Results
	require.NoError(t, json.Unmarshal(callTool(t, s, "analyze_codebase", `{}`), &res))
	assert.Equal(t, root, res.Root)
	assert.Equal(t, 2, res.FileCount)
	assert.NotEmpty(t, res.Findings.Security)
	assert.NotEmpty(t, res.Findings.Debt)
}

func TestFindIssuesTool_KeepsStoreAcrossCalls(t *testing.T) {
	s, _ := newTestServer(t)

	var debt []finding.Finding
	require.NoError(t, json.Unmarshal(callTool(t, s, "find_issues", `{"category":"debt"}`), &debt))
	require.NotEmpty(t, debt)

	var sum finding.Summary
	require.NoError(t, json.Unmarshal(callTool(t, s, "get_summary", `{}`), &sum))
	assert.Equal(t, len(debt), sum.Total)
	assert.Equal(t, 0, sum.ByCategory["security"])

	var sec []finding.Finding
	require.NoError(t, json.Unmarshal(callTool(t, s, "find_issues", `{"category":"Security"}`), &sec))
	require.NotEmpty(t, sec)

	require.NoError(t, json.Unmarshal(callTool(t, s, "get_summary", `{}`), &sum))
	assert.Equal(t, len(debt)+len(sec), sum.Total)
}

func TestFindIssuesTool_SuppliedFiles(t *testing.T) {
	s, root := newTestServer(t)

	var got []finding.Finding
	args := `{"category":"security","files":[` + mustJSON(t, filepath.Join(root, "README.md")) + `]}`
	require.NoError(t, json.Unmarshal(callTool(t, s, "find_issues", args), &got))
	assert.Empty(t, got)
}

func TestFindIssuesTool_BadCategory(t *testing.T) {
	s, _ := newTestServer(t)
	res := s.callTool(context.Background(), toolsCallParams{
		Name:      "find_issues",
		Arguments: json.RawMessage(`{"category":"style"}`),
	})
	assert.True(t, res.IsError)
}

func TestGenerateSuggestionsTool(t *testing.T) {
	s, _ := newTestServer(t)
	callTool(t, s, "analyze_codebase", `{}`)

	var all []suggest.Suggestion
	require.NoError(t, json.Unmarshal(callTool(t, s, "generate_suggestions", `{}`), &all))
	require.GreaterOrEqual(t, len(all), 3)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Priority, all[i].Priority)
	}

	var limited []suggest.Suggestion
	require.NoError(t, json.Unmarshal(callTool(t, s, "generate_suggestions", `{"limit":1,"category":"debt"}`), &limited))
	require.Len(t, limited, 1)
	assert.Equal(t, finding.CategoryDebt, limited[0].Category)
}

func TestGenerateSuggestionsTool_EmptyStore(t *testing.T) {
	s, _ := newTestServer(t)
	assert.JSONEq(t, `[]`, string(callTool(t, s, "generate_suggestions", `{}`)))
}

func TestGenerateReportTool(t *testing.T) {
	s, root := newTestServer(t)
	callTool(t, s, "analyze_codebase", `{}`)

	dest := filepath.Join(root, "report.md")
	var got ReportResult
	require.NoError(t, json.Unmarshal(callTool(t, s, "generate_report", `{"output_path":`+mustJSON(t, dest)+`}`), &got))
	assert.Equal(t, report.FormatMarkdown, got.Format)
	assert.Equal(t, dest, got.Path)
	assert.Contains(t, got.Content, "# Codebase Improvement Report")

	onDisk, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, got.Content, string(onDisk))
}

func TestGenerateReportTool_WriteFailure(t *testing.T) {
	s, root := newTestServer(t)
	dest := filepath.Join(root, "no", "such", "dir", "r.json")
	res := s.callTool(context.Background(), toolsCallParams{
		Name:      "generate_report",
		Arguments: json.RawMessage(`{"format":"json","output_path":` + mustJSON(t, dest) + `}`),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].Text, "writing report")
}

func TestGenerateReportTool_RelativePathUnderRoot(t *testing.T) {
	s, root := newTestServer(t)

	var got ReportResult
	require.NoError(t, json.Unmarshal(callTool(t, s, "generate_report", `{"format":"json","output_path":"r.json"}`), &got))
	assert.Equal(t, filepath.Join(root, "r.json"), got.Path)
}

func TestGenerateReportTool_RefusesPathOutsideRoot(t *testing.T) {
	s, root := newTestServer(t)
	outside := filepath.Join(t.TempDir(), "r.md")

	for _, p := range []string{outside, "../escape.md", filepath.Join(root, "sub", "..", "..", "x.md"), "."} {
		res := s.callTool(context.Background(), toolsCallParams{
			Name:      "generate_report",
			Arguments: json.RawMessage(`{"output_path":` + mustJSON(t, p) + `}`),
		})
		assert.True(t, res.IsError, p)
		assert.Contains(t, res.Content[0].Text, "outside", p)
	}
	_, err := os.Stat(outside)
	assert.True(t, os.IsNotExist(err))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
