package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/ideation/internal/finding"
	"github.com/blackwell-systems/ideation/internal/report"
	"github.com/blackwell-systems/ideation/internal/suggest"
)

// resetFlags puts every flag of c and its children back to its default so
// one test's flags cannot leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func fixtureRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"README.md":         "# demo\n",
		"src/app.js":        "const apiKey = \"abcd1234efgh\";\neval(input);\n// TODO: split this up\n",
		"src/util.js":       "// FIXME: leaks handles\nconst data = fs.readFileSync(path);\n",
		"node_modules/x.js": "eval(bad);\n",
		".ideation.yaml":    "concurrency: 2\n",
	}
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"analyze": false, "find": false, "suggest": false, "report": false, "summary": false, "mcp": false, "doctor": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "%s subcommand not registered on rootCmd", name)
	}
}

func TestRoot_ListsCommands(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "summary")
}

func TestAnalyze_JSON(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "analyze", root, "--json")
	require.NoError(t, err)

	var res report.Results
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	// README.md, .ideation.yaml and the two sources; node_modules is ignored.
	assert.Equal(t, 4, res.FileCount)
	assert.NotEmpty(t, res.Findings.Security)
	assert.NotEmpty(t, res.Findings.Debt)
	assert.Equal(t, res.Summary.Total, len(res.Suggestions))
}

func TestAnalyze_Text(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "analyze", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Files analyzed")
	assert.Contains(t, out, "Suggestions")
	assert.Contains(t, out, "security")
}

func TestAnalyze_FocusFlag(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "analyze", root, "--json", "--focus", "debt")
	require.NoError(t, err)

	var res report.Results
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Findings.Security)
	assert.NotEmpty(t, res.Findings.Debt)
}

func TestAnalyze_MaxFilesFlagRejectsZero(t *testing.T) {
	root := fixtureRepo(t)
	_, err := execute(t, "analyze", root, "--max-files", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestAnalyze_MissingRoot(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "find", "security", root, "--json")
	require.NoError(t, err)

	var findings []finding.Finding
	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, finding.CategorySecurity, f.Category)
	}
}

func TestFind_Text(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "find", "debt", root, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "debt findings")
	assert.Contains(t, out, filepath.Join("src", "util.js"))
}

func TestFind_UnknownCategory(t *testing.T) {
	_, err := execute(t, "find", "style", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "security, performance, docs, debt")
}

func TestSuggest_LimitAndCategory(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "suggest", root, "--json", "--limit", "1")
	require.NoError(t, err)

	var got []suggest.Suggestion
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)

	out, err = execute(t, "suggest", root, "--json", "--limit", "0", "--category", "debt")
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Equal(t, finding.CategoryDebt, s.Category)
	}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Priority, got[i].Priority)
	}
}

func TestSuggest_BadCategory(t *testing.T) {
	_, err := execute(t, "suggest", t.TempDir(), "--category", "style")
	require.Error(t, err)
}

func TestReport_WritesFile(t *testing.T) {
	root := fixtureRepo(t)
	dest := filepath.Join(t.TempDir(), "report.yaml")

	out, err := execute(t, "report", root, "--format", "yaml", "--output", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "suggestions:")
}

func TestReport_MarkdownToStdout(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "report", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Codebase Improvement Report"))
}

func TestReport_UnknownFormat(t *testing.T) {
	_, err := execute(t, "report", t.TempDir(), "--format", "html")
	require.Error(t, err)
}

func TestMCP_ServesOverStdin(t *testing.T) {
	root := fixtureRepo(t)
	rootCmd.SetIn(strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n"))
	defer rootCmd.SetIn(nil)

	_, err := execute(t, "mcp", root)
	require.NoError(t, err, "EOF on stdin ends the server cleanly")
}

func TestDoctor_JSON(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "doctor", root, "--json")
	require.NoError(t, err)

	var got doctorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, len(got.Checks), got.TotalCount)
	assert.Equal(t, got.TotalCount, got.PassedCount, "%+v", got.Checks)
}

func TestDoctor_FlagsProblems(t *testing.T) {
	out, err := execute(t, "doctor", filepath.Join(t.TempDir(), "gone"), "--json", "--ignore", "[bad")
	require.NoError(t, err)

	var got doctorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	failed := map[string]bool{}
	for _, c := range got.Checks {
		if !c.Passed {
			failed[c.Name] = true
		}
	}
	assert.True(t, failed["Target directory"])
	assert.True(t, failed["Ignore patterns"])
	assert.True(t, failed["File discovery"])
}

func TestSummary_JSON(t *testing.T) {
	root := fixtureRepo(t)
	out, err := execute(t, "summary", root, "--json")
	require.NoError(t, err)

	var sum finding.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Positive(t, sum.Total)
	assert.Len(t, sum.ByCategory, 4)
}
